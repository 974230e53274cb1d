package service

import (
	"testing"

	"wayfinding/internal/model"
	"wayfinding/internal/repository"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	directory, err := NewDirectory(repository.DefaultBuildings(), repository.DefaultRooms())
	if err != nil {
		t.Fatalf("Failed to build directory from default catalog: %v", err)
	}
	return directory
}

func TestNewDirectory_InvalidCatalogs(t *testing.T) {
	valid := model.Building{Code: "A", Name: "Main", Floors: 10, Category: model.CategoryMain}

	tests := []struct {
		name      string
		buildings []model.Building
		rooms     map[string]map[string][]model.Room
	}{
		{
			name:      "Duplicate building code",
			buildings: []model.Building{valid, {Code: "A", Name: "Other", Floors: 3, Category: model.CategoryOther}},
		},
		{
			name:      "Non-positive floor count",
			buildings: []model.Building{{Code: "B", Name: "Bad", Floors: 0, Category: model.CategoryOther}},
		},
		{
			name:      "Rooms on unknown building",
			buildings: []model.Building{valid},
			rooms: map[string]map[string][]model.Room{
				"Z": {"1": {{Code: "R1", Name: "Room", Type: model.RoomService}}},
			},
		},
		{
			name:      "Floor above building height",
			buildings: []model.Building{valid},
			rooms: map[string]map[string][]model.Room{
				"A": {"11": {{Code: "R1", Name: "Room", Type: model.RoomService}}},
			},
		},
		{
			name:      "Duplicate room code on a floor",
			buildings: []model.Building{valid},
			rooms: map[string]map[string][]model.Room{
				"A": {"2": {
					{Code: "R1", Name: "Room", Type: model.RoomService},
					{Code: "R1", Name: "Room again", Type: model.RoomService},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDirectory(tt.buildings, tt.rooms); err == nil {
				t.Error("Expected catalog validation to fail, got nil error")
			}
		})
	}
}

func TestDirectory_ListBuildings(t *testing.T) {
	directory := newTestDirectory(t)

	buildings := directory.ListBuildings()
	if len(buildings) != 11 {
		t.Fatalf("Expected 11 buildings, got %d", len(buildings))
	}
	if buildings[0].Code != "A" || buildings[2].Code != "CHALERM" {
		t.Errorf("Buildings out of configured order: got %s, %s", buildings[0].Code, buildings[2].Code)
	}

	// The returned slice is a copy; mutating it must not touch the catalog.
	buildings[0].Code = "MUTATED"
	if directory.ListBuildings()[0].Code != "A" {
		t.Error("ListBuildings leaked internal state")
	}
}

func TestDirectory_ListRooms(t *testing.T) {
	directory := newTestDirectory(t)

	tests := []struct {
		name     string
		building string
		floor    string
		want     int
	}{
		{name: "CHALERM floor 11", building: "CHALERM", floor: "11", want: 6},
		{name: "CHALERM floor 9", building: "CHALERM", floor: "9", want: 5},
		{name: "CHALERM floor 12", building: "CHALERM", floor: "12", want: 1},
		{name: "E floor 1", building: "E", floor: "1", want: 1},
		{name: "Nonexistent floor", building: "CHALERM", floor: "99", want: 0},
		{name: "Building without rooms", building: "A", floor: "1", want: 0},
		{name: "Unknown building", building: "NOPE", floor: "1", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := directory.ListRooms(tt.building, tt.floor)
			if rooms == nil {
				t.Fatal("Expected empty slice, got nil")
			}
			if len(rooms) != tt.want {
				t.Errorf("Expected %d rooms, got %d", tt.want, len(rooms))
			}
		})
	}
}

func TestDirectory_ListRooms_Chalerm11(t *testing.T) {
	directory := newTestDirectory(t)

	rooms := directory.ListRooms("CHALERM", "11")
	if len(rooms) != 6 {
		t.Fatalf("Expected 6 rooms on CHALERM/11, got %d", len(rooms))
	}

	// Configured order is stable: YOTHI first.
	if rooms[0].Code != "YOTHI" {
		t.Errorf("Expected YOTHI first, got %s", rooms[0].Code)
	}

	var hasYothi, hasVIP bool
	for _, room := range rooms {
		if room.Code == "YOTHI" {
			hasYothi = true
		}
		if room.Type == model.RoomVIP {
			hasVIP = true
		}
	}
	if !hasYothi {
		t.Error("Expected a room coded YOTHI on CHALERM/11")
	}
	if !hasVIP {
		t.Error("Expected a VIP-type room on CHALERM/11")
	}
}

func TestDirectory_FindRoom(t *testing.T) {
	directory := newTestDirectory(t)

	room, building, floor, ok := directory.FindRoom("EMS_CONF")
	if !ok {
		t.Fatal("Expected to find EMS_CONF")
	}
	if building.Code != "E" || floor != "4" {
		t.Errorf("Expected EMS_CONF on E/4, got %s/%s", building.Code, floor)
	}
	if room.Name != "ห้องประชุม EMS" {
		t.Errorf("Unexpected room name %q", room.Name)
	}

	if _, _, _, ok := directory.FindRoom("NOPE"); ok {
		t.Error("Expected lookup of unknown room code to fail")
	}
}

func TestDirectory_Stats(t *testing.T) {
	directory := newTestDirectory(t)

	buildings, floors, rooms := directory.Stats()
	if buildings != 11 {
		t.Errorf("Expected 11 buildings, got %d", buildings)
	}
	if floors != 96 {
		t.Errorf("Expected 96 floors, got %d", floors)
	}
	if rooms != 14 {
		t.Errorf("Expected 14 rooms, got %d", rooms)
	}
}
