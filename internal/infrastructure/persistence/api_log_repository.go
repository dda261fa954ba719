package persistence

import (
	"context"

	"github.com/codatendechat/gateway/internal/domain/gateway"
	"github.com/codatendechat/gateway/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormApiLogRepository implements gateway.ApiLogRepository using GORM
type GormApiLogRepository struct {
	db *gorm.DB
}

// NewGormApiLogRepository creates a new GormApiLogRepository
func NewGormApiLogRepository(db *gorm.DB) *GormApiLogRepository {
	return &GormApiLogRepository{db: db}
}

// Insert appends a single audit entry.
func (r *GormApiLogRepository) Insert(ctx context.Context, entry *gateway.ApiLogEntry) error {
	var model models.ApiLogModel
	model.FromDomain(entry)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(&model).Error
}
