package handler

import (
	"crypto/subtle"
	"net/http"

	"wayfinding/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin tooling HTTP requests
type AdminHandler struct {
	directory *service.Directory
	password  string
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(directory *service.Directory, password string) *AdminHandler {
	return &AdminHandler{
		directory: directory,
		password:  password,
	}
}

// PasswordRequest is the body of POST /api/verify-password
type PasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// VerifyPassword handles POST /api/verify-password
func (h *AdminHandler) VerifyPassword(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "รหัสผ่านถูกต้อง"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": false, "message": "รหัสผ่านไม่ถูกต้อง"})
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	buildings, floors, rooms := h.directory.Stats()
	c.JSON(http.StatusOK, gin.H{
		"total_buildings": buildings,
		"total_floors":    floors,
		"total_locations": rooms,
	})
}
