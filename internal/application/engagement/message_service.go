package engagement

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/domain/shared"
)

// MessageService reads a ticket's message history and delegates sends to
// the platform's send-message service.
type MessageService struct {
	messages  engagement.MessageRepository
	tickets   engagement.TicketRepository
	whatsapps engagement.WhatsAppRepository
	sender    engagement.MessageSender
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messages engagement.MessageRepository,
	tickets engagement.TicketRepository,
	whatsapps engagement.WhatsAppRepository,
	sender engagement.MessageSender,
) *MessageService {
	return &MessageService{messages: messages, tickets: tickets, whatsapps: whatsapps, sender: sender}
}

// ListMessagesInput narrows a message listing.
type ListMessagesInput struct {
	TicketID string
	Limit    int
	Offset   int
}

// List returns one page of a ticket's messages, newest-first.
func (s *MessageService) List(ctx context.Context, companyID uuid.UUID, input ListMessagesInput) (*MessageListResult, error) {
	if input.TicketID == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "ticket_id is required")
	}
	ticketID, err := uuid.Parse(input.TicketID)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeValidationError, "ticket_id must be a valid UUID")
	}

	page := shared.Page{Limit: input.Limit, Offset: input.Offset}.Normalize()

	messages, total, err := s.messages.FindByTicketForCompany(ctx, companyID, ticketID, page)
	if err != nil {
		return nil, err
	}

	items := make([]MessageResponse, len(messages))
	for i := range messages {
		items[i] = NewMessageResponse(&messages[i])
	}
	return &MessageListResult{Items: items, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}

// SendMessageInput carries the send payload.
type SendMessageInput struct {
	Number     string `json:"number"`
	TicketID   string `json:"ticket_id"`
	Message    string `json:"message"`
	MediaURL   string `json:"media_url"`
	WhatsAppID string `json:"whatsapp_id"`
}

// Send resolves the sending connection and the recipient, then delegates
// delivery. Connection resolution: the explicitly named connection (looked
// up within the company), else the company's default connected one, else
// any connected one. Recipient resolution: the explicit number, else the
// named ticket's contact number.
func (s *MessageService) Send(ctx context.Context, companyID uuid.UUID, input SendMessageInput) (*SendMessageResponse, error) {
	if input.Message == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "message is required")
	}
	if input.Number == "" && input.TicketID == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "number or ticket_id is required")
	}

	whatsappID, err := s.resolveConnection(ctx, companyID, input.WhatsAppID)
	if err != nil {
		return nil, err
	}

	number, err := s.resolveRecipient(ctx, companyID, input.Number, input.TicketID)
	if err != nil {
		return nil, err
	}

	result, err := s.sender.Send(ctx, engagement.SendMessageInput{
		WhatsAppID: whatsappID,
		CompanyID:  companyID,
		Number:     number,
		Message:    input.Message,
		MediaURL:   input.MediaURL,
	})
	if err != nil {
		return nil, shared.NewDomainErrorWithDetails(shared.CodeSendFailed, "Failed to send message", err.Error())
	}

	return &SendMessageResponse{Success: true, Data: result.Raw}, nil
}

func (s *MessageService) resolveConnection(ctx context.Context, companyID uuid.UUID, explicitID string) (uuid.UUID, error) {
	noConnection := shared.NewDomainError(shared.CodeNoConnection, "No connected WhatsApp found")

	if explicitID != "" {
		parsed, err := uuid.Parse(explicitID)
		if err != nil {
			return uuid.Nil, noConnection
		}
		conn, err := s.whatsapps.FindByIDForCompany(ctx, companyID, parsed)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return uuid.Nil, noConnection
			}
			return uuid.Nil, err
		}
		return conn.ID, nil
	}

	conn, err := s.whatsapps.FindConnectedForCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, noConnection
		}
		return uuid.Nil, err
	}
	return conn.ID, nil
}

func (s *MessageService) resolveRecipient(ctx context.Context, companyID uuid.UUID, number, ticketID string) (string, error) {
	if number != "" {
		return number, nil
	}

	noRecipient := shared.NewDomainError(shared.CodeValidationError, "Could not determine recipient number")

	parsed, err := uuid.Parse(ticketID)
	if err != nil {
		return "", noRecipient
	}
	ticket, err := s.tickets.FindByIDForCompany(ctx, companyID, parsed)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", noRecipient
		}
		return "", err
	}
	if ticket.Contact == nil || ticket.Contact.Number == "" {
		return "", noRecipient
	}
	return ticket.Contact.Number, nil
}
