package models

import (
	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/google/uuid"
)

// ContactModel is the persistence model for the Contact domain entity.
type ContactModel struct {
	TenantModel
	Name   string `gorm:"type:varchar(200);not null"`
	Number string `gorm:"type:varchar(50);not null;index"`
	Email  string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact entity.
func (m *ContactModel) ToDomain() *engagement.Contact {
	return &engagement.Contact{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Number:       m.Number,
		Email:        m.Email,
	}
}

// FromDomain populates the persistence model from a domain Contact entity.
func (m *ContactModel) FromDomain(c *engagement.Contact) {
	m.FromDomainTenantEntity(c.TenantEntity)
	m.Name = c.Name
	m.Number = c.Number
	m.Email = c.Email
}

// TicketModel is the persistence model for the Ticket domain entity.
type TicketModel struct {
	TenantModel
	ContactID uuid.UUID  `gorm:"type:uuid;not null;index"`
	QueueID   *uuid.UUID `gorm:"type:uuid;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(20);not null;default:'open';index"`

	Contact *ContactModel `gorm:"foreignKey:ContactID"`
	Queue   *QueueModel   `gorm:"foreignKey:QueueID"`
}

// TableName returns the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}

// ToDomain converts the persistence model to a domain Ticket entity.
func (m *TicketModel) ToDomain() *engagement.Ticket {
	ticket := &engagement.Ticket{
		TenantEntity: m.ToDomainTenantEntity(),
		ContactID:    m.ContactID,
		QueueID:      m.QueueID,
		UserID:       m.UserID,
		Status:       m.Status,
	}
	if m.Contact != nil {
		ticket.Contact = m.Contact.ToDomain()
	}
	if m.Queue != nil {
		ticket.Queue = m.Queue.ToDomain()
	}
	return ticket
}

// FromDomain populates the persistence model from a domain Ticket entity.
// Joined relations are read-only and never written back.
func (m *TicketModel) FromDomain(t *engagement.Ticket) {
	m.FromDomainTenantEntity(t.TenantEntity)
	m.ContactID = t.ContactID
	m.QueueID = t.QueueID
	m.UserID = t.UserID
	m.Status = t.Status
}

// MessageModel is the persistence model for the Message domain entity.
type MessageModel struct {
	TenantModel
	TicketID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body     string    `gorm:"type:text;not null"`
	MediaURL string    `gorm:"type:varchar(500);column:media_url"`
	FromMe   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts the persistence model to a domain Message entity.
func (m *MessageModel) ToDomain() *engagement.Message {
	return &engagement.Message{
		TenantEntity: m.ToDomainTenantEntity(),
		TicketID:     m.TicketID,
		Body:         m.Body,
		MediaURL:     m.MediaURL,
		FromMe:       m.FromMe,
	}
}

// QueueModel is the persistence model for the Queue domain entity.
type QueueModel struct {
	TenantModel
	Name              string `gorm:"type:varchar(200);not null"`
	Color             string `gorm:"type:varchar(20)"`
	GreetingMessage   string `gorm:"type:text"`
	OutOfHoursMessage string `gorm:"type:text"`
	OrderQueue        int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (QueueModel) TableName() string {
	return "queues"
}

// ToDomain converts the persistence model to a domain Queue entity.
func (m *QueueModel) ToDomain() *engagement.Queue {
	return &engagement.Queue{
		TenantEntity:      m.ToDomainTenantEntity(),
		Name:              m.Name,
		Color:             m.Color,
		GreetingMessage:   m.GreetingMessage,
		OutOfHoursMessage: m.OutOfHoursMessage,
		OrderQueue:        m.OrderQueue,
	}
}

// TagModel is the persistence model for the Tag domain entity.
type TagModel struct {
	TenantModel
	Name   string `gorm:"type:varchar(200);not null"`
	Color  string `gorm:"type:varchar(20)"`
	Kanban int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ToDomain converts the persistence model to a domain Tag entity.
func (m *TagModel) ToDomain() *engagement.Tag {
	return &engagement.Tag{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Color:        m.Color,
		Kanban:       m.Kanban,
	}
}

// WhatsappModel is the persistence model for the WhatsAppConnection entity.
type WhatsappModel struct {
	TenantModel
	Name      string `gorm:"type:varchar(200);not null"`
	Status    string `gorm:"type:varchar(30);not null;index"`
	IsDefault bool   `gorm:"not null;default:false"`
	Provider  string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (WhatsappModel) TableName() string {
	return "whatsapps"
}

// ToDomain converts the persistence model to a domain WhatsAppConnection.
func (m *WhatsappModel) ToDomain() *engagement.WhatsAppConnection {
	return &engagement.WhatsAppConnection{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Status:       m.Status,
		IsDefault:    m.IsDefault,
		Provider:     m.Provider,
	}
}
