package engagement

import (
	"context"

	"github.com/google/uuid"
)

// SendMessageInput is the payload handed to the outbound delivery service.
type SendMessageInput struct {
	WhatsAppID uuid.UUID
	CompanyID  uuid.UUID
	Number     string
	Message    string
	MediaURL   string
}

// SendMessageResult is whatever the delivery service reports back; the
// gateway passes it through to the caller untouched.
type SendMessageResult struct {
	Raw map[string]any
}

// MessageSender delivers a message through the external send-message service.
// A non-nil error means delivery could not be confirmed; the gateway surfaces
// it as SEND_FAILED rather than swallowing it.
type MessageSender interface {
	Send(ctx context.Context, input SendMessageInput) (*SendMessageResult, error)
}
