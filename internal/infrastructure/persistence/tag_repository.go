package persistence

import (
	"context"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTagRepository implements engagement.TagRepository using GORM
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GormTagRepository
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// FindAllForCompany lists tags of a company ordered by name.
func (r *GormTagRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]engagement.Tag, error) {
	var tagModels []models.TagModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]engagement.Tag, len(tagModels))
	for i, model := range tagModels {
		tags[i] = *model.ToDomain()
	}
	return tags, nil
}
