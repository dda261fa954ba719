package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/codatendechat/gateway/internal/application/engagement"
	"github.com/codatendechat/gateway/internal/interfaces/http/middleware"
)

// DirectoryHandler serves the unpaginated reference listings
type DirectoryHandler struct {
	BaseHandler
	directory *engagement.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directory *engagement.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// RegisterRoutes registers directory routes with their permission guards
func (h *DirectoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/queues", middleware.RequirePermission("queues:read"), h.ListQueues)
	rg.GET("/tags", middleware.RequirePermission("tags:read"), h.ListTags)
	rg.GET("/whatsapps", middleware.RequirePermission("whatsapps:read"), h.ListWhatsApps)
}

// ListQueues handles GET /queues
func (h *DirectoryHandler) ListQueues(c *gin.Context) {
	queues, err := h.directory.ListQueues(c.Request.Context(), middleware.GetCompanyID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Directory(c, queues)
}

// ListTags handles GET /tags
func (h *DirectoryHandler) ListTags(c *gin.Context) {
	tags, err := h.directory.ListTags(c.Request.Context(), middleware.GetCompanyID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Directory(c, tags)
}

// ListWhatsApps handles GET /whatsapps
func (h *DirectoryHandler) ListWhatsApps(c *gin.Context) {
	whatsapps, err := h.directory.ListWhatsApps(c.Request.Context(), middleware.GetCompanyID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Directory(c, whatsapps)
}
