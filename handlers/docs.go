package handlers

import (
	"net/http"

	scalargo "github.com/bdpiprava/scalar-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocsHandler renders the API reference from the OpenAPI document in SpecDir.
type DocsHandler struct {
	SpecDir string
}

func NewDocsHandler(specDir string) *DocsHandler {
	return &DocsHandler{SpecDir: specDir}
}

func (h *DocsHandler) ReferenceHandler(c *gin.Context) {
	html, err := scalargo.NewV2(
		scalargo.WithSpecDir(h.SpecDir),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle("Travel Agent API"),
		),
	)
	if err != nil {
		getLogger(c).Error("Failed to render API reference", zap.String("specDir", h.SpecDir), zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
