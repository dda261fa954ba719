package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/codatendechat/gateway/internal/domain/gateway"
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormApiTokenRepository implements gateway.ApiTokenRepository using GORM
type GormApiTokenRepository struct {
	db *gorm.DB
}

// NewGormApiTokenRepository creates a new GormApiTokenRepository
func NewGormApiTokenRepository(db *gorm.DB) *GormApiTokenRepository {
	return &GormApiTokenRepository{db: db}
}

// FindActiveByToken looks up an active token by exact key match.
func (r *GormApiTokenRepository) FindActiveByToken(ctx context.Context, key string) (*gateway.ApiToken, error) {
	var model models.ApiTokenModel
	if err := r.db.WithContext(ctx).
		Where("token = ? AND is_active = ?", key, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// TouchLastUsed sets last_used_at without loading the row. A concurrent
// touch losing the race just leaves a slightly older timestamp behind.
func (r *GormApiTokenRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.ApiTokenModel{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
}
