package engagement

import (
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/google/uuid"
)

// Message is a single WhatsApp message attached to a ticket.
type Message struct {
	shared.TenantEntity
	TicketID uuid.UUID
	Body     string
	MediaURL string
	FromMe   bool
}
