package engagement

import (
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/google/uuid"
)

// Ticket statuses
const (
	TicketStatusOpen    = "open"
	TicketStatusPending = "pending"
	TicketStatusClosed  = "closed"
)

// Ticket is a conversation/case record associated with a contact and
// optionally a queue and an assigned user.
type Ticket struct {
	shared.TenantEntity
	ContactID uuid.UUID
	QueueID   *uuid.UUID
	UserID    *uuid.UUID
	Status    string

	// Joined relations, normalized to single values at the repository
	// boundary regardless of how the underlying query shapes them.
	Contact *Contact
	Queue   *Queue
}

// TicketUpdate carries a partial update; nil fields are left untouched.
type TicketUpdate struct {
	Status  *string
	QueueID *uuid.UUID
	UserID  *uuid.UUID
}
