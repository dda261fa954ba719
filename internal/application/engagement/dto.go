// Package engagement holds the application services behind the gateway's
// resource endpoints: contacts, tickets, messages, and the directory
// listings (queues, tags, WhatsApp connections).
package engagement

import (
	"time"

	"github.com/google/uuid"

	"github.com/codatendechat/gateway/internal/domain/engagement"
)

// ContactResponse is the wire shape of a contact.
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContactResponse maps a domain contact to its wire shape.
func NewContactResponse(c *engagement.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Number:    c.Number,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ContactListResult carries one page of contacts plus pagination echo.
type ContactListResult struct {
	Items  []ContactResponse
	Total  int64
	Limit  int
	Offset int
}

// QueueRef is the short queue projection inlined into tickets.
type QueueRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// TicketResponse is the wire shape of a ticket with its contact and queue
// inlined as single objects.
type TicketResponse struct {
	ID        uuid.UUID        `json:"id"`
	CompanyID uuid.UUID        `json:"company_id"`
	ContactID uuid.UUID        `json:"contact_id"`
	QueueID   *uuid.UUID       `json:"queue_id"`
	UserID    *uuid.UUID       `json:"user_id"`
	Status    string           `json:"status"`
	Contact   *ContactResponse `json:"contact"`
	Queue     *QueueRef        `json:"queue"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewTicketResponse maps a domain ticket to its wire shape.
func NewTicketResponse(t *engagement.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:        t.ID,
		CompanyID: t.CompanyID,
		ContactID: t.ContactID,
		QueueID:   t.QueueID,
		UserID:    t.UserID,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Contact != nil {
		contact := NewContactResponse(t.Contact)
		resp.Contact = &contact
	}
	if t.Queue != nil {
		resp.Queue = &QueueRef{
			ID:    t.Queue.ID,
			Name:  t.Queue.Name,
			Color: t.Queue.Color,
		}
	}
	return resp
}

// TicketDetailResponse is a ticket with its recent messages inlined.
// Messages is always present, empty unless explicitly requested.
type TicketDetailResponse struct {
	TicketResponse
	Messages []MessageResponse `json:"messages"`
}

// TicketListResult carries one page of tickets plus pagination echo.
type TicketListResult struct {
	Items  []TicketResponse
	Total  int64
	Limit  int
	Offset int
}

// MessageResponse is the wire shape of a message.
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	TicketID  uuid.UUID `json:"ticket_id"`
	Body      string    `json:"body"`
	MediaURL  string    `json:"media_url"`
	FromMe    bool      `json:"from_me"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessageResponse maps a domain message to its wire shape.
func NewMessageResponse(m *engagement.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		TicketID:  m.TicketID,
		Body:      m.Body,
		MediaURL:  m.MediaURL,
		FromMe:    m.FromMe,
		CreatedAt: m.CreatedAt,
	}
}

// MessageListResult carries one page of messages plus pagination echo.
type MessageListResult struct {
	Items  []MessageResponse
	Total  int64
	Limit  int
	Offset int
}

// SendMessageResponse is the wire shape of a delegated send.
type SendMessageResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

// QueueResponse is the directory projection of a queue.
type QueueResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Color             string    `json:"color"`
	GreetingMessage   string    `json:"greeting_message"`
	OutOfHoursMessage string    `json:"out_of_hours_message"`
}

// TagResponse is the directory projection of a tag.
type TagResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Kanban int       `json:"kanban"`
}

// WhatsAppResponse is the directory projection of a WhatsApp connection.
type WhatsAppResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	IsDefault bool      `json:"is_default"`
	Provider  string    `json:"provider"`
}
