package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codatendechat/gateway/internal/application/gateway"
)

// DocsHandler serves the unauthenticated API description
type DocsHandler struct {
	publicURL string
}

// NewDocsHandler creates a new DocsHandler. publicURL, when set, overrides
// the per-request base URL in the served payload.
func NewDocsHandler(publicURL string) *DocsHandler {
	return &DocsHandler{publicURL: publicURL}
}

// Docs handles GET / and GET /docs
func (h *DocsHandler) Docs(c *gin.Context) {
	baseURL := h.publicURL
	if baseURL == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		baseURL = scheme + "://" + c.Request.Host
	}
	c.JSON(http.StatusOK, gateway.BuildDocs(baseURL))
}
