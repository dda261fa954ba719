package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/codatendechat/gateway/internal/application/engagement"
	"github.com/codatendechat/gateway/internal/interfaces/http/middleware"
)

// ContactHandler serves the tenant's contact book
type ContactHandler struct {
	BaseHandler
	contacts *engagement.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contacts *engagement.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// RegisterRoutes registers contact routes with their permission guards
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	contacts.GET("", middleware.RequirePermission("contacts:read"), h.List)
	contacts.GET("/:id", middleware.RequirePermission("contacts:read"), h.Get)
	contacts.POST("", middleware.RequirePermission("contacts:write"), h.Create)
	contacts.PUT("/:id", middleware.RequirePermission("contacts:write"), h.Update)
}

// List handles GET /contacts
func (h *ContactHandler) List(c *gin.Context) {
	result, err := h.contacts.List(c.Request.Context(), middleware.GetCompanyID(c), engagement.ListContactsInput{
		Search: c.Query("search"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, result.Items, result.Total, result.Limit, result.Offset)
}

// Get handles GET /contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.contacts.Get(c.Request.Context(), middleware.GetCompanyID(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Data(c, contact)
}

// Create handles POST /contacts. A malformed body behaves like an empty
// one; the required-field validation then reports what is missing.
func (h *ContactHandler) Create(c *gin.Context) {
	var input engagement.CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = engagement.CreateContactInput{}
	}

	contact, err := h.contacts.Create(c.Request.Context(), middleware.GetCompanyID(c), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, contact)
}

// Update handles PUT /contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	var input engagement.UpdateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = engagement.UpdateContactInput{}
	}

	contact, err := h.contacts.Update(c.Request.Context(), middleware.GetCompanyID(c), c.Param("id"), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Data(c, contact)
}
