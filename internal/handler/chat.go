package handler

import (
	"net/http"

	"wayfinding/internal/model"
	"wayfinding/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles AI chat HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles POST /api/ai/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.chatService.Ask(c.Request.Context(), req.Question))
}

// Status handles GET /api/ai/status
func (h *ChatHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.chatService.Status())
}
