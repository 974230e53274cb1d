package service

import (
	"fmt"
	"strconv"

	"wayfinding/internal/model"
)

// Directory is the read-only catalog of buildings, floors and rooms.
// It is built once at startup and never mutated afterwards, so all lookups
// are safe to call concurrently.
type Directory struct {
	buildings []model.Building
	byCode    map[string]model.Building
	rooms     map[string]map[string][]model.Room
}

// NewDirectory validates the catalog and builds the lookup indexes.
// Building codes must be unique and every room must sit on a floor within
// [1, floorCount] of a known building; violations abort bootstrap.
func NewDirectory(buildings []model.Building, rooms map[string]map[string][]model.Room) (*Directory, error) {
	byCode := make(map[string]model.Building, len(buildings))
	for _, b := range buildings {
		if _, exists := byCode[b.Code]; exists {
			return nil, fmt.Errorf("duplicate building code %q", b.Code)
		}
		if b.Floors <= 0 {
			return nil, fmt.Errorf("building %q has invalid floor count %d", b.Code, b.Floors)
		}
		byCode[b.Code] = b
	}

	for buildingCode, floors := range rooms {
		building, ok := byCode[buildingCode]
		if !ok {
			return nil, fmt.Errorf("rooms reference unknown building %q", buildingCode)
		}
		for floor, floorRooms := range floors {
			if n, err := strconv.Atoi(floor); err == nil {
				if n < 1 || n > building.Floors {
					return nil, fmt.Errorf("building %q has no floor %q (1-%d)", buildingCode, floor, building.Floors)
				}
			}
			seen := make(map[string]bool, len(floorRooms))
			for _, room := range floorRooms {
				if seen[room.Code] {
					return nil, fmt.Errorf("duplicate room code %q on %s/%s", room.Code, buildingCode, floor)
				}
				seen[room.Code] = true
			}
		}
	}

	return &Directory{
		buildings: buildings,
		byCode:    byCode,
		rooms:     rooms,
	}, nil
}

// ListBuildings returns all buildings in their configured order.
func (d *Directory) ListBuildings() []model.Building {
	out := make([]model.Building, len(d.buildings))
	copy(out, d.buildings)
	return out
}

// ListRooms returns the rooms registered on a building floor, in stable
// configured order. Unknown buildings and floors yield an empty slice, not
// an error: the directory is allowed to be partial while onboarding.
func (d *Directory) ListRooms(building, floor string) []model.Room {
	floors, ok := d.rooms[building]
	if !ok {
		return []model.Room{}
	}
	floorRooms, ok := floors[floor]
	if !ok {
		return []model.Room{}
	}
	out := make([]model.Room, len(floorRooms))
	copy(out, floorRooms)
	return out
}

// GetBuilding looks up a building by code.
func (d *Directory) GetBuilding(code string) (model.Building, bool) {
	b, ok := d.byCode[code]
	return b, ok
}

// FindRoom locates a room by code anywhere in the directory, returning the
// room, its building and its floor label.
func (d *Directory) FindRoom(code string) (model.Room, model.Building, string, bool) {
	for _, building := range d.buildings {
		for floor, floorRooms := range d.rooms[building.Code] {
			for _, room := range floorRooms {
				if room.Code == code {
					return room, building, floor, true
				}
			}
		}
	}
	return model.Room{}, model.Building{}, "", false
}

// Stats reports catalog counts for the admin endpoint.
func (d *Directory) Stats() (buildings, floors, rooms int) {
	buildings = len(d.buildings)
	for _, b := range d.buildings {
		floors += b.Floors
		for _, floorRooms := range d.rooms[b.Code] {
			rooms += len(floorRooms)
		}
	}
	return buildings, floors, rooms
}
