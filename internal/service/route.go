package service

import (
	"fmt"

	"wayfinding/internal/model"
)

// Per-step walking distances in meters. The route is a fixed six-step
// template, not a graph search: the system does not model indoor geometry,
// so the distances are constants and the total is 95 for every pair of
// locations.
const (
	distanceToBuilding  = 50
	distanceToEntrance  = 10
	distanceToElevators = 20
	distanceElevator    = 0
	distanceFromLift    = 15
	distanceArrive      = 0

	walkingSpeedMetersPerMinute = 50
)

// RouteSynthesizer produces navigation step sequences between two
// directory locations.
type RouteSynthesizer struct {
	directory *Directory
}

// NewRouteSynthesizer creates a new route synthesizer
func NewRouteSynthesizer(directory *Directory) *RouteSynthesizer {
	return &RouteSynthesizer{directory: directory}
}

// ComputeRoute synthesizes the six-step route from one location to another.
// There are no error conditions: an empty destination room degrades the
// final instruction but never fails the request.
func (s *RouteSynthesizer) ComputeRoute(from, to model.Location) model.Route {
	destination := to.Building
	if building, ok := s.directory.GetBuilding(to.Building); ok {
		destination = building.Name
	}

	steps := []model.RouteStep{
		{Step: 1, Instruction: fmt.Sprintf("เดินจากจุดปัจจุบันไปยัง%s", destination), Distance: distanceToBuilding},
		{Step: 2, Instruction: "เข้าประตูหลักของอาคาร", Distance: distanceToEntrance},
		{Step: 3, Instruction: "เดินไปยังโถงลิฟต์", Distance: distanceToElevators},
		{Step: 4, Instruction: fmt.Sprintf("ขึ้นลิฟต์ไปชั้น %s", to.Floor), Distance: distanceElevator},
		{Step: 5, Instruction: "ออกจากลิฟต์ตามป้ายบอกทาง", Distance: distanceFromLift},
		{Step: 6, Instruction: fmt.Sprintf("ถึง %s แล้ว", to.Room), Distance: distanceArrive},
	}

	total := 0
	for _, step := range steps {
		total += step.Distance
	}

	estimated := total / walkingSpeedMetersPerMinute
	if estimated < 1 {
		estimated = 1
	}

	return model.Route{
		From:          model.Location{Building: from.Building, Floor: from.Floor},
		To:            to,
		Steps:         steps,
		TotalDistance: total,
		EstimatedTime: estimated,
	}
}
