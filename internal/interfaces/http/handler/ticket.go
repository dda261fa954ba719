package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/codatendechat/gateway/internal/application/engagement"
	"github.com/codatendechat/gateway/internal/interfaces/http/middleware"
)

// TicketHandler serves the tenant's support tickets
type TicketHandler struct {
	BaseHandler
	tickets *engagement.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(tickets *engagement.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// RegisterRoutes registers ticket routes with their permission guards
func (h *TicketHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tickets := rg.Group("/tickets")
	tickets.GET("", middleware.RequirePermission("tickets:read"), h.List)
	tickets.GET("/:id", middleware.RequirePermission("tickets:read"), h.Get)
	tickets.POST("", middleware.RequirePermission("tickets:write"), h.Create)
	tickets.PUT("/:id", middleware.RequirePermission("tickets:write"), h.Update)
}

// List handles GET /tickets
func (h *TicketHandler) List(c *gin.Context) {
	result, err := h.tickets.List(c.Request.Context(), middleware.GetCompanyID(c), engagement.ListTicketsInput{
		Status: c.Query("status"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, result.Items, result.Total, result.Limit, result.Offset)
}

// Get handles GET /tickets/:id. include_messages=true inlines the ticket's
// most recent messages, oldest-first.
func (h *TicketHandler) Get(c *gin.Context) {
	includeMessages := c.Query("include_messages") == "true"

	ticket, err := h.tickets.Get(c.Request.Context(), middleware.GetCompanyID(c), c.Param("id"), includeMessages)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Data(c, ticket)
}

// Create handles POST /tickets. A malformed body behaves like an empty
// one; the required-field validation then reports what is missing.
func (h *TicketHandler) Create(c *gin.Context) {
	var input engagement.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = engagement.CreateTicketInput{}
	}

	ticket, err := h.tickets.Create(c.Request.Context(), middleware.GetCompanyID(c), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ticket)
}

// Update handles PUT /tickets/:id
func (h *TicketHandler) Update(c *gin.Context) {
	var input engagement.UpdateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = engagement.UpdateTicketInput{}
	}

	ticket, err := h.tickets.Update(c.Request.Context(), middleware.GetCompanyID(c), c.Param("id"), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Data(c, ticket)
}
