package handlers

import (
	"net/http"

	"travelagent/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness plus the latest backing service
// snapshot when a monitor is running.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

func (h *HealthHandler) StatusHandler(c *gin.Context) {
	body := gin.H{"status": "ok", "message": "Travel Agent API is running"}
	if h.Monitor != nil {
		body["services"] = h.Monitor.Status()
	}
	c.JSON(http.StatusOK, body)
}
