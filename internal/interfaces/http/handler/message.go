package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codatendechat/gateway/internal/application/engagement"
	"github.com/codatendechat/gateway/internal/interfaces/http/middleware"
)

// MessageHandler serves message history and delegated sends
type MessageHandler struct {
	BaseHandler
	messages *engagement.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messages *engagement.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// RegisterRoutes registers message routes with their permission guards
func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	messages.GET("", middleware.RequirePermission("messages:read"), h.List)
	messages.POST("/send", middleware.RequirePermission("messages:write"), h.Send)
}

// List handles GET /messages. ticket_id is required.
func (h *MessageHandler) List(c *gin.Context) {
	result, err := h.messages.List(c.Request.Context(), middleware.GetCompanyID(c), engagement.ListMessagesInput{
		TicketID: c.Query("ticket_id"),
		Limit:    queryInt(c, "limit", 0),
		Offset:   queryInt(c, "offset", 0),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, result.Items, result.Total, result.Limit, result.Offset)
}

// Send handles POST /messages/send. A malformed body behaves like an empty
// one; the required-field validation then reports what is missing.
func (h *MessageHandler) Send(c *gin.Context) {
	var input engagement.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = engagement.SendMessageInput{}
	}

	result, err := h.messages.Send(c.Request.Context(), middleware.GetCompanyID(c), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
