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

// GormTicketRepository implements engagement.TicketRepository using GORM
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GormTicketRepository
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// FindAllForCompany lists tickets of a company newest-activity-first with
// contact and queue inlined.
func (r *GormTicketRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter engagement.TicketFilter) ([]engagement.Ticket, int64, error) {
	page := filter.Page.Normalize()

	query := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("company_id = ?", companyID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ticketModels []models.TicketModel
	if err := query.
		Preload("Contact").
		Preload("Queue").
		Order("updated_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, err
	}

	tickets := make([]engagement.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		tickets[i] = *model.ToDomain()
	}
	return tickets, total, nil
}

// FindByIDForCompany finds a ticket by ID within a company with contact and
// queue inlined.
func (r *GormTicketRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*engagement.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).
		Preload("Contact").
		Preload("Queue").
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create persists a new ticket and reloads it with relations inlined.
func (r *GormTicketRepository) Create(ctx context.Context, ticket *engagement.Ticket) error {
	var model models.TicketModel
	model.FromDomain(ticket)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}

	created, err := r.FindByIDForCompany(ctx, model.CompanyID, model.ID)
	if err != nil {
		return err
	}
	*ticket = *created
	return nil
}

// Update applies a partial update to a ticket within a company and returns
// the updated ticket with relations inlined.
func (r *GormTicketRepository) Update(ctx context.Context, companyID, id uuid.UUID, update engagement.TicketUpdate) (*engagement.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	if update.Status != nil {
		model.Status = *update.Status
	}
	if update.QueueID != nil {
		model.QueueID = update.QueueID
	}
	if update.UserID != nil {
		model.UserID = update.UserID
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return nil, err
	}
	return r.FindByIDForCompany(ctx, companyID, id)
}
