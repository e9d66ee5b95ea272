package handlers

import (
	"net/http"

	"travelagent/models"
	ai "travelagent/services/intelligence"
	"travelagent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the travel assistant chat.
type AIHandler struct {
	Chat ai.ChatService
}

func NewAIHandler(svc ai.ChatService) *AIHandler {
	return &AIHandler{Chat: svc}
}

// ChatHandler forwards a message to the model. Any failure other than a
// bad request is reported as 500.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.Chat.Chat(c.Request.Context(), req)
	if err != nil {
		logger.Error("Chat request failed", zap.String("sessionID", req.SessionID), zap.Error(err))
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "Gemini AI"})
}
