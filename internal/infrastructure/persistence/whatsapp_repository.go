package persistence

import (
	"context"
	"errors"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWhatsAppRepository implements engagement.WhatsAppRepository using GORM
type GormWhatsAppRepository struct {
	db *gorm.DB
}

// NewGormWhatsAppRepository creates a new GormWhatsAppRepository
func NewGormWhatsAppRepository(db *gorm.DB) *GormWhatsAppRepository {
	return &GormWhatsAppRepository{db: db}
}

// FindAllForCompany lists WhatsApp connections of a company ordered by name.
func (r *GormWhatsAppRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]engagement.WhatsAppConnection, error) {
	var whatsappModels []models.WhatsappModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&whatsappModels).Error; err != nil {
		return nil, err
	}

	connections := make([]engagement.WhatsAppConnection, len(whatsappModels))
	for i, model := range whatsappModels {
		connections[i] = *model.ToDomain()
	}
	return connections, nil
}

// FindByIDForCompany finds a WhatsApp connection by ID within a company
func (r *GormWhatsAppRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*engagement.WhatsAppConnection, error) {
	var model models.WhatsappModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindConnectedForCompany resolves the connection used for sending when the
// caller names none: the default connected connection wins, then any
// connected one, otherwise shared.ErrNotFound.
func (r *GormWhatsAppRepository) FindConnectedForCompany(ctx context.Context, companyID uuid.UUID) (*engagement.WhatsAppConnection, error) {
	var model models.WhatsappModel
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ? AND is_default = ?", companyID, engagement.WhatsAppStatusConnected, true).
		First(&model).Error
	if err == nil {
		return model.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("company_id = ? AND status = ?", companyID, engagement.WhatsAppStatusConnected).
		Order("created_at ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}
