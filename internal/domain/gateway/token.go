// Package gateway holds the domain model of the external API gateway itself:
// API tokens, their permission sets, and the append-only audit trail.
package gateway

import (
	"time"

	"github.com/codatendechat/gateway/internal/domain/shared"
)

// Wildcard permission sentinels. A token granted either one passes every
// permission check. There is no other hierarchy or glob matching.
const (
	PermissionWildcard = "*"
	PermissionAll      = "all"
)

// ApiToken is an opaque credential granting a scoped permission set to an
// external integration. Tokens are created out-of-band; the gateway only
// resolves them and bumps last_used_at.
type ApiToken struct {
	shared.TenantEntity
	Name        string
	Token       string
	Permissions []string
	IsActive    bool
	ExpiresAt   *time.Time
	LastUsedAt  *time.Time
}

// HasPermission reports whether the token grants the required permission.
// The literal wildcard entries pass every check; otherwise the required
// string must be present verbatim in the permission set.
func (t *ApiToken) HasPermission(required string) bool {
	for _, p := range t.Permissions {
		if p == PermissionWildcard || p == PermissionAll || p == required {
			return true
		}
	}
	return false
}

// IsExpired reports whether the token has an expiry in the past relative to now
func (t *ApiToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}
