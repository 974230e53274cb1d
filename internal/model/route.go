package model

// Location identifies a point in the directory: a building, a floor label
// and optionally a room name. Floor labels are strings so non-numeric
// identifiers ("G", "M") remain representable.
type Location struct {
	Building string `json:"building"`
	Floor    string `json:"floor"`
	Room     string `json:"room,omitempty"`
}

// RouteStep is a single navigation instruction with its walking distance.
type RouteStep struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
	Distance    int    `json:"distance"`
}

// Route is a derived value, recomputed per request and never stored.
type Route struct {
	From          Location    `json:"from"`
	To            Location    `json:"to"`
	Steps         []RouteStep `json:"steps"`
	TotalDistance int         `json:"total_distance"`
	EstimatedTime int         `json:"estimated_time"`
}
