package handlers

import (
	"errors"
	"net/http"

	"travelagent/services/oauth"
	"travelagent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UberHandler runs the Uber OAuth login flow.
type UberHandler struct {
	Auth *oauth.UberAuth
}

func NewUberHandler(auth *oauth.UberAuth) *UberHandler {
	return &UberHandler{Auth: auth}
}

// LoginHandler redirects to the Uber consent page.
func (h *UberHandler) LoginHandler(c *gin.Context) {
	url, err := h.Auth.LoginURL()
	if err != nil {
		writeOAuthError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// CallbackHandler exchanges the authorization code and stores the token.
func (h *UberHandler) CallbackHandler(c *gin.Context) {
	logger := getLogger(c)

	if e := c.Query("error"); e != "" {
		utils.JSONError(c, http.StatusBadRequest, "Uber authorization denied: "+e)
		return
	}
	if err := h.Auth.Exchange(c.Request.Context(), c.Query("state"), c.Query("code")); err != nil {
		logger.Error("Uber token exchange failed", zap.Error(err))
		writeOAuthError(c, err)
		return
	}
	logger.Info("Uber account connected")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Uber account connected"})
}

func (h *UberHandler) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Auth.Status())
}

func writeOAuthError(c *gin.Context, err error) {
	if errors.Is(err, oauth.ErrNotConfigured) {
		utils.JSONError(c, http.StatusServiceUnavailable, err.Error())
		return
	}
	utils.WriteError(c, err, http.StatusBadGateway)
}
