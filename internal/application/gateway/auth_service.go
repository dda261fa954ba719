// Package gateway holds the application services of the gateway itself:
// API-key authentication, the audit trail, and the public docs payload.
package gateway

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/codatendechat/gateway/internal/domain/gateway"
	"github.com/codatendechat/gateway/internal/domain/shared"
)

const defaultTouchTimeout = 5 * time.Second

// AuthService resolves API keys into tokens.
type AuthService struct {
	tokens       gateway.ApiTokenRepository
	logger       *zap.Logger
	now          func() time.Time
	touchTimeout time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(tokens gateway.ApiTokenRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		tokens:       tokens,
		logger:       logger,
		now:          time.Now,
		touchTimeout: defaultTouchTimeout,
	}
}

// Authenticate resolves an opaque API key. An empty key yields
// shared.ErrAuthRequired, an unknown or inactive key shared.ErrInvalidKey.
// An expired key yields shared.ErrKeyExpired together with the resolved
// token, so the caller can still attribute the rejection in the audit trail;
// last_used_at is NOT touched in that case.
//
// On success last_used_at is bumped fire-and-forget on a background context:
// the write must not delay the request and a failure is logged and swallowed.
func (s *AuthService) Authenticate(ctx context.Context, key string) (*gateway.ApiToken, error) {
	if key == "" {
		return nil, shared.ErrAuthRequired
	}

	token, err := s.tokens.FindActiveByToken(ctx, key)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidKey
		}
		return nil, err
	}

	now := s.now()
	if token.IsExpired(now) {
		return token, shared.ErrKeyExpired
	}

	go func() {
		touchCtx, cancel := context.WithTimeout(context.Background(), s.touchTimeout)
		defer cancel()
		if err := s.tokens.TouchLastUsed(touchCtx, token.ID, now); err != nil {
			s.logger.Error("failed to update token last_used_at",
				zap.String("api_token_id", token.ID.String()),
				zap.Error(err),
			)
		}
	}()

	return token, nil
}
