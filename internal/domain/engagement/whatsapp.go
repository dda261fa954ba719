package engagement

import "github.com/codatendechat/gateway/internal/domain/shared"

// WhatsAppStatusConnected marks a connection able to deliver messages.
const WhatsAppStatusConnected = "CONNECTED"

// WhatsAppConnection is one provisioned WhatsApp channel of a company.
type WhatsAppConnection struct {
	shared.TenantEntity
	Name      string
	Status    string
	IsDefault bool
	Provider  string
}

// IsConnected reports whether the connection can currently send messages.
func (w *WhatsAppConnection) IsConnected() bool {
	return w.Status == WhatsAppStatusConnected
}
