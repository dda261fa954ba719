package engagement

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/domain/shared"
)

// ticketMessagesCap bounds the messages inlined into a ticket detail.
const ticketMessagesCap = 100

// TicketService performs tenant-scoped ticket operations.
type TicketService struct {
	tickets  engagement.TicketRepository
	contacts engagement.ContactRepository
	messages engagement.MessageRepository
}

// NewTicketService creates a new TicketService
func NewTicketService(
	tickets engagement.TicketRepository,
	contacts engagement.ContactRepository,
	messages engagement.MessageRepository,
) *TicketService {
	return &TicketService{tickets: tickets, contacts: contacts, messages: messages}
}

// ListTicketsInput narrows a ticket listing.
type ListTicketsInput struct {
	Status string
	Limit  int
	Offset int
}

// List returns one page of the company's tickets ordered by latest activity.
func (s *TicketService) List(ctx context.Context, companyID uuid.UUID, input ListTicketsInput) (*TicketListResult, error) {
	page := shared.Page{Limit: input.Limit, Offset: input.Offset}.Normalize()

	tickets, total, err := s.tickets.FindAllForCompany(ctx, companyID, engagement.TicketFilter{
		Status: input.Status,
		Page:   page,
	})
	if err != nil {
		return nil, err
	}

	items := make([]TicketResponse, len(tickets))
	for i := range tickets {
		items[i] = NewTicketResponse(&tickets[i])
	}
	return &TicketListResult{Items: items, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}

// Get returns one ticket of the company. When includeMessages is set the
// newest messages (up to 100) are inlined oldest-first; otherwise messages
// is an empty slice. A malformed id behaves like an unknown one.
func (s *TicketService) Get(ctx context.Context, companyID uuid.UUID, id string, includeMessages bool) (*TicketDetailResponse, error) {
	ticketID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Ticket not found")
	}

	ticket, err := s.tickets.FindByIDForCompany(ctx, companyID, ticketID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Ticket not found")
		}
		return nil, err
	}

	messages := []MessageResponse{}
	if includeMessages {
		recent, err := s.messages.FindRecentByTicket(ctx, companyID, ticketID, ticketMessagesCap)
		if err != nil {
			return nil, err
		}
		messages = make([]MessageResponse, len(recent))
		for i := range recent {
			messages[i] = NewMessageResponse(&recent[i])
		}
	}

	return &TicketDetailResponse{
		TicketResponse: NewTicketResponse(ticket),
		Messages:       messages,
	}, nil
}

// CreateTicketInput carries the ticket creation payload.
type CreateTicketInput struct {
	ContactID string `json:"contact_id"`
	QueueID   string `json:"queue_id"`
	Status    string `json:"status"`
}

// Create stores a new ticket for the company. The contact must belong to
// the same company; a foreign or unknown contact is reported as not found.
func (s *TicketService) Create(ctx context.Context, companyID uuid.UUID, input CreateTicketInput) (*TicketResponse, error) {
	if input.ContactID == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "contact_id is required")
	}
	contactID, err := uuid.Parse(input.ContactID)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeValidationError, "contact_id must be a valid UUID")
	}

	if _, err := s.contacts.FindByIDForCompany(ctx, companyID, contactID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Contact not found")
		}
		return nil, err
	}

	var queueID *uuid.UUID
	if input.QueueID != "" {
		parsed, err := uuid.Parse(input.QueueID)
		if err != nil {
			return nil, shared.NewDomainError(shared.CodeValidationError, "queue_id must be a valid UUID")
		}
		queueID = &parsed
	}

	status := input.Status
	if status == "" {
		status = engagement.TicketStatusOpen
	}

	ticket := &engagement.Ticket{
		ContactID: contactID,
		QueueID:   queueID,
		Status:    status,
	}
	ticket.CompanyID = companyID

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	resp := NewTicketResponse(ticket)
	return &resp, nil
}

// UpdateTicketInput carries a partial ticket update.
type UpdateTicketInput struct {
	Status  *string `json:"status"`
	QueueID *string `json:"queue_id"`
	UserID  *string `json:"user_id"`
}

// Update applies a partial update to one of the company's tickets.
func (s *TicketService) Update(ctx context.Context, companyID uuid.UUID, id string, input UpdateTicketInput) (*TicketResponse, error) {
	ticketID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Ticket not found")
	}

	update := engagement.TicketUpdate{}
	if input.Status != nil && *input.Status != "" {
		update.Status = input.Status
	}
	if input.QueueID != nil && *input.QueueID != "" {
		parsed, err := uuid.Parse(*input.QueueID)
		if err != nil {
			return nil, shared.NewDomainError(shared.CodeValidationError, "queue_id must be a valid UUID")
		}
		update.QueueID = &parsed
	}
	if input.UserID != nil && *input.UserID != "" {
		parsed, err := uuid.Parse(*input.UserID)
		if err != nil {
			return nil, shared.NewDomainError(shared.CodeValidationError, "user_id must be a valid UUID")
		}
		update.UserID = &parsed
	}

	ticket, err := s.tickets.Update(ctx, companyID, ticketID, update)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Ticket not found")
		}
		return nil, err
	}

	resp := NewTicketResponse(ticket)
	return &resp, nil
}
