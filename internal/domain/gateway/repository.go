package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ApiTokenRepository resolves and maintains API tokens.
type ApiTokenRepository interface {
	// FindActiveByToken looks up an active token by exact key match.
	// Returns shared.ErrNotFound when no active token carries the key.
	FindActiveByToken(ctx context.Context, key string) (*ApiToken, error)
	// TouchLastUsed sets last_used_at; losing a concurrent race is harmless.
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

// ApiLogRepository appends audit entries. Implementations must not mutate
// or read existing rows.
type ApiLogRepository interface {
	Insert(ctx context.Context, entry *ApiLogEntry) error
}
