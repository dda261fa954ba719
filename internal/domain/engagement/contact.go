// Package engagement holds the tenant-scoped customer-engagement records the
// gateway reads and writes: contacts, tickets, messages, queues, tags, and
// WhatsApp connections. Schema ownership lives with the surrounding platform;
// the gateway only performs constrained, company-scoped operations on them.
package engagement

import "github.com/codatendechat/gateway/internal/domain/shared"

// Contact is a person or business reachable over WhatsApp.
type Contact struct {
	shared.TenantEntity
	Name   string
	Number string
	Email  string
}

// ContactUpdate carries a partial update; nil fields are left untouched.
type ContactUpdate struct {
	Name   *string
	Number *string
	Email  *string
}
