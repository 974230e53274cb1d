package handler

import (
	"net/http"

	"wayfinding/internal/model"
	"wayfinding/internal/service"

	"github.com/gin-gonic/gin"
)

// NavigationHandler handles directory and routing HTTP requests
type NavigationHandler struct {
	directory *service.Directory
	routes    *service.RouteSynthesizer
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(directory *service.Directory, routes *service.RouteSynthesizer) *NavigationHandler {
	return &NavigationHandler{
		directory: directory,
		routes:    routes,
	}
}

// Buildings handles GET /api/navigation/buildings
func (h *NavigationHandler) Buildings(c *gin.Context) {
	c.JSON(http.StatusOK, model.BuildingsResponse{
		Buildings: h.directory.ListBuildings(),
	})
}

// Rooms handles GET /api/navigation/rooms/:building/:floor.
// Unknown buildings and floors answer with an empty room list, not an
// error: the directory is allowed to be partial.
func (h *NavigationHandler) Rooms(c *gin.Context) {
	building := c.Param("building")
	floor := c.Param("floor")

	c.JSON(http.StatusOK, model.RoomsResponse{
		Building: building,
		Floor:    floor,
		Rooms:    h.directory.ListRooms(building, floor),
	})
}

// Route handles GET /api/navigation/route. All parameters default to the
// fixed sample origin and destination when omitted.
func (h *NavigationHandler) Route(c *gin.Context) {
	from := model.Location{
		Building: c.DefaultQuery("from_building", "A"),
		Floor:    c.DefaultQuery("from_floor", "1"),
	}
	to := model.Location{
		Building: c.DefaultQuery("to_building", "CHALERM"),
		Floor:    c.DefaultQuery("to_floor", "11"),
		Room:     c.DefaultQuery("to_room", ""),
	}

	c.JSON(http.StatusOK, h.routes.ComputeRoute(from, to))
}
