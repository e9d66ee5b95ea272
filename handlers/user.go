package handlers

import (
	"net/http"

	"travelagent/services/user"
	"travelagent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the demo profile and preferences.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Users: svc}
}

func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Users.GetProfile())
}

func (h *UserHandler) GetPreferencesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Users.GetPreferences())
}

// UpdatePreferencesHandler merges the body into the stored preferences.
func (h *UserHandler) UpdatePreferencesHandler(c *gin.Context) {
	logger := getLogger(c)

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Warn("Invalid preferences body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	applied, err := h.Users.UpdatePreferences(updates)
	if err != nil {
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated", "preferences": applied})
}
