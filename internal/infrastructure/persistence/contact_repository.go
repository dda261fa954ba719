package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContactRepository implements engagement.ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindAllForCompany lists contacts of a company newest-first, with an
// optional case-insensitive substring search over name and number.
func (r *GormContactRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter engagement.ContactFilter) ([]engagement.Contact, int64, error) {
	page := filter.Page.Normalize()

	query := r.db.WithContext(ctx).
		Model(&models.ContactModel{}).
		Where("company_id = ?", companyID)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(number) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contactModels []models.ContactModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&contactModels).Error; err != nil {
		return nil, 0, err
	}

	contacts := make([]engagement.Contact, len(contactModels))
	for i, model := range contactModels {
		contacts[i] = *model.ToDomain()
	}
	return contacts, total, nil
}

// FindByIDForCompany finds a contact by ID within a company
func (r *GormContactRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*engagement.Contact, error) {
	var model models.ContactModel
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

// Create persists a new contact. The contact's ID is generated here when
// the caller left it zero.
func (r *GormContactRepository) Create(ctx context.Context, contact *engagement.Contact) error {
	var model models.ContactModel
	model.FromDomain(contact)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	*contact = *model.ToDomain()
	return nil
}

// Update applies a partial update to a contact within a company and returns
// the updated entity.
func (r *GormContactRepository) Update(ctx context.Context, companyID, id uuid.UUID, update engagement.ContactUpdate) (*engagement.Contact, error) {
	var model models.ContactModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		model.Name = *update.Name
	}
	if update.Number != nil {
		model.Number = *update.Number
	}
	if update.Email != nil {
		model.Email = *update.Email
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}
