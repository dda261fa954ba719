package engagement

import (
	"context"

	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactFilter narrows contact listings.
type ContactFilter struct {
	// Search matches as a substring over name and number.
	Search string
	Page   shared.Page
}

// ContactRepository performs company-scoped contact persistence.
type ContactRepository interface {
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter ContactFilter) ([]Contact, int64, error)
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, companyID, id uuid.UUID, update ContactUpdate) (*Contact, error)
}

// TicketFilter narrows ticket listings.
type TicketFilter struct {
	Status string
	Page   shared.Page
}

// TicketRepository performs company-scoped ticket persistence. Finders
// inline the ticket's contact and queue.
type TicketRepository interface {
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter TicketFilter) ([]Ticket, int64, error)
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Ticket, error)
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, companyID, id uuid.UUID, update TicketUpdate) (*Ticket, error)
}

// MessageRepository reads messages; the gateway never writes them directly,
// delivery happens through the send-message service.
type MessageRepository interface {
	// FindByTicketForCompany lists messages newest-first.
	FindByTicketForCompany(ctx context.Context, companyID, ticketID uuid.UUID, page shared.Page) ([]Message, int64, error)
	// FindRecentByTicket lists up to limit messages oldest-first for inlining
	// into a ticket detail response.
	FindRecentByTicket(ctx context.Context, companyID, ticketID uuid.UUID, limit int) ([]Message, error)
}

// QueueRepository lists queues ordered by their configured position.
type QueueRepository interface {
	FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]Queue, error)
}

// TagRepository lists tags ordered by name.
type TagRepository interface {
	FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]Tag, error)
}

// WhatsAppRepository resolves WhatsApp connections of a company.
type WhatsAppRepository interface {
	FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]WhatsAppConnection, error)
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*WhatsAppConnection, error)
	// FindConnectedForCompany returns the default connected connection when
	// one exists, otherwise any connected connection, otherwise ErrNotFound.
	FindConnectedForCompany(ctx context.Context, companyID uuid.UUID) (*WhatsAppConnection, error)
}
