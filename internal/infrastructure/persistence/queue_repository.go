package persistence

import (
	"context"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQueueRepository implements engagement.QueueRepository using GORM
type GormQueueRepository struct {
	db *gorm.DB
}

// NewGormQueueRepository creates a new GormQueueRepository
func NewGormQueueRepository(db *gorm.DB) *GormQueueRepository {
	return &GormQueueRepository{db: db}
}

// FindAllForCompany lists queues of a company in configured board order.
func (r *GormQueueRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]engagement.Queue, error) {
	var queueModels []models.QueueModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("order_queue ASC, name ASC").
		Find(&queueModels).Error; err != nil {
		return nil, err
	}

	queues := make([]engagement.Queue, len(queueModels))
	for i, model := range queueModels {
		queues[i] = *model.ToDomain()
	}
	return queues, nil
}
