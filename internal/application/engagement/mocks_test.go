package engagement

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/domain/shared"
)

// In-memory repositories backing the service tests.

type memContactRepo struct {
	contacts map[uuid.UUID]*engagement.Contact
	clock    time.Time
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{
		contacts: make(map[uuid.UUID]*engagement.Contact),
		clock:    time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (m *memContactRepo) add(companyID uuid.UUID, name, number string) *engagement.Contact {
	m.clock = m.clock.Add(time.Minute)
	contact := &engagement.Contact{Name: name, Number: number}
	contact.ID = uuid.New()
	contact.CompanyID = companyID
	contact.CreatedAt = m.clock
	contact.UpdatedAt = m.clock
	m.contacts[contact.ID] = contact
	return contact
}

func (m *memContactRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, filter engagement.ContactFilter) ([]engagement.Contact, int64, error) {
	page := filter.Page.Normalize()
	var matched []engagement.Contact
	for _, contact := range m.contacts {
		if contact.CompanyID != companyID {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(contact.Name), needle) &&
				!strings.Contains(strings.ToLower(contact.Number), needle) {
				continue
			}
		}
		matched = append(matched, *contact)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if page.Offset >= len(matched) {
		return []engagement.Contact{}, total, nil
	}
	end := page.Offset + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[page.Offset:end], total, nil
}

func (m *memContactRepo) FindByIDForCompany(_ context.Context, companyID, id uuid.UUID) (*engagement.Contact, error) {
	contact, ok := m.contacts[id]
	if !ok || contact.CompanyID != companyID {
		return nil, shared.ErrNotFound
	}
	copied := *contact
	return &copied, nil
}

func (m *memContactRepo) Create(_ context.Context, contact *engagement.Contact) error {
	m.clock = m.clock.Add(time.Minute)
	contact.ID = uuid.New()
	contact.CreatedAt = m.clock
	contact.UpdatedAt = m.clock
	stored := *contact
	m.contacts[contact.ID] = &stored
	return nil
}

func (m *memContactRepo) Update(_ context.Context, companyID, id uuid.UUID, update engagement.ContactUpdate) (*engagement.Contact, error) {
	contact, ok := m.contacts[id]
	if !ok || contact.CompanyID != companyID {
		return nil, shared.ErrNotFound
	}
	if update.Name != nil {
		contact.Name = *update.Name
	}
	if update.Number != nil {
		contact.Number = *update.Number
	}
	if update.Email != nil {
		contact.Email = *update.Email
	}
	copied := *contact
	return &copied, nil
}

type memTicketRepo struct {
	tickets map[uuid.UUID]*engagement.Ticket
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{tickets: make(map[uuid.UUID]*engagement.Ticket)}
}

func (m *memTicketRepo) add(companyID uuid.UUID, contact *engagement.Contact, status string) *engagement.Ticket {
	ticket := &engagement.Ticket{Status: status}
	ticket.ID = uuid.New()
	ticket.CompanyID = companyID
	if contact != nil {
		ticket.ContactID = contact.ID
		ticket.Contact = contact
	}
	m.tickets[ticket.ID] = ticket
	return ticket
}

func (m *memTicketRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, filter engagement.TicketFilter) ([]engagement.Ticket, int64, error) {
	var matched []engagement.Ticket
	for _, ticket := range m.tickets {
		if ticket.CompanyID != companyID {
			continue
		}
		if filter.Status != "" && ticket.Status != filter.Status {
			continue
		}
		matched = append(matched, *ticket)
	}
	return matched, int64(len(matched)), nil
}

func (m *memTicketRepo) FindByIDForCompany(_ context.Context, companyID, id uuid.UUID) (*engagement.Ticket, error) {
	ticket, ok := m.tickets[id]
	if !ok || ticket.CompanyID != companyID {
		return nil, shared.ErrNotFound
	}
	copied := *ticket
	return &copied, nil
}

func (m *memTicketRepo) Create(_ context.Context, ticket *engagement.Ticket) error {
	ticket.ID = uuid.New()
	stored := *ticket
	m.tickets[ticket.ID] = &stored
	return nil
}

func (m *memTicketRepo) Update(_ context.Context, companyID, id uuid.UUID, update engagement.TicketUpdate) (*engagement.Ticket, error) {
	ticket, ok := m.tickets[id]
	if !ok || ticket.CompanyID != companyID {
		return nil, shared.ErrNotFound
	}
	if update.Status != nil {
		ticket.Status = *update.Status
	}
	if update.QueueID != nil {
		ticket.QueueID = update.QueueID
	}
	if update.UserID != nil {
		ticket.UserID = update.UserID
	}
	copied := *ticket
	return &copied, nil
}

type memMessageRepo struct {
	messages []engagement.Message
}

func (m *memMessageRepo) FindByTicketForCompany(_ context.Context, companyID, ticketID uuid.UUID, page shared.Page) ([]engagement.Message, int64, error) {
	page = page.Normalize()
	var matched []engagement.Message
	for _, msg := range m.messages {
		if msg.CompanyID == companyID && msg.TicketID == ticketID {
			matched = append(matched, msg)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if page.Offset >= len(matched) {
		return []engagement.Message{}, total, nil
	}
	end := page.Offset + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[page.Offset:end], total, nil
}

func (m *memMessageRepo) FindRecentByTicket(_ context.Context, companyID, ticketID uuid.UUID, limit int) ([]engagement.Message, error) {
	var matched []engagement.Message
	for _, msg := range m.messages {
		if msg.CompanyID == companyID && msg.TicketID == ticketID {
			matched = append(matched, msg)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}

type memWhatsAppRepo struct {
	connections []engagement.WhatsAppConnection
}

func (m *memWhatsAppRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID) ([]engagement.WhatsAppConnection, error) {
	var matched []engagement.WhatsAppConnection
	for _, conn := range m.connections {
		if conn.CompanyID == companyID {
			matched = append(matched, conn)
		}
	}
	return matched, nil
}

func (m *memWhatsAppRepo) FindByIDForCompany(_ context.Context, companyID, id uuid.UUID) (*engagement.WhatsAppConnection, error) {
	for _, conn := range m.connections {
		if conn.CompanyID == companyID && conn.ID == id {
			copied := conn
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memWhatsAppRepo) FindConnectedForCompany(_ context.Context, companyID uuid.UUID) (*engagement.WhatsAppConnection, error) {
	var fallback *engagement.WhatsAppConnection
	for i := range m.connections {
		conn := m.connections[i]
		if conn.CompanyID != companyID || !conn.IsConnected() {
			continue
		}
		if conn.IsDefault {
			copied := conn
			return &copied, nil
		}
		if fallback == nil {
			copied := conn
			fallback = &copied
		}
	}
	if fallback == nil {
		return nil, shared.ErrNotFound
	}
	return fallback, nil
}

type mockSender struct {
	lastInput *engagement.SendMessageInput
	result    *engagement.SendMessageResult
	err       error
}

func (m *mockSender) Send(_ context.Context, input engagement.SendMessageInput) (*engagement.SendMessageResult, error) {
	m.lastInput = &input
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &engagement.SendMessageResult{Raw: map[string]any{}}, nil
}
