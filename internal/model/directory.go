package model

// Building categories used in the hospital directory
const (
	CategoryMain   = "main"
	CategoryIPD    = "ipd"
	CategoryOPD    = "opd"
	CategoryAdmin  = "admin"
	CategoryER     = "er"
	CategoryHeart  = "heart"
	CategoryClinic = "clinic"
	CategoryEMS    = "ems"
	CategoryOther  = "other"
)

// Room types
const (
	RoomConference = "conference"
	RoomService    = "service"
	RoomVIP        = "vip"
	RoomEmergency  = "emergency"
)

// Building represents a building in the hospital directory.
// The catalog is loaded once at startup and treated as read-only.
type Building struct {
	Code     string `json:"code" db:"code"`
	Name     string `json:"name" db:"name"`
	Floors   int    `json:"floors" db:"floors"`
	Category string `json:"type" db:"category"`
}

// Room represents a room registered on a specific building floor.
type Room struct {
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
	Type string `json:"type" db:"room_type"`
}

// RoomsResponse is the wire shape for the room listing endpoint.
type RoomsResponse struct {
	Building string `json:"building"`
	Floor    string `json:"floor"`
	Rooms    []Room `json:"rooms"`
}

// BuildingsResponse is the wire shape for the building listing endpoint.
type BuildingsResponse struct {
	Buildings []Building `json:"buildings"`
}
