package persistence

import (
	"context"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMessageRepository implements engagement.MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// FindByTicketForCompany lists a ticket's messages newest-first.
func (r *GormMessageRepository) FindByTicketForCompany(ctx context.Context, companyID, ticketID uuid.UUID, page shared.Page) ([]engagement.Message, int64, error) {
	page = page.Normalize()

	query := r.db.WithContext(ctx).
		Model(&models.MessageModel{}).
		Where("company_id = ? AND ticket_id = ?", companyID, ticketID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messageModels []models.MessageModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&messageModels).Error; err != nil {
		return nil, 0, err
	}

	messages := make([]engagement.Message, len(messageModels))
	for i, model := range messageModels {
		messages[i] = *model.ToDomain()
	}
	return messages, total, nil
}

// FindRecentByTicket returns the newest messages of a ticket, reordered
// oldest-first for inlining into a ticket detail response.
func (r *GormMessageRepository) FindRecentByTicket(ctx context.Context, companyID, ticketID uuid.UUID, limit int) ([]engagement.Message, error) {
	if limit <= 0 {
		return []engagement.Message{}, nil
	}

	var messageModels []models.MessageModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND ticket_id = ?", companyID, ticketID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, err
	}

	messages := make([]engagement.Message, len(messageModels))
	for i, model := range messageModels {
		messages[len(messageModels)-1-i] = *model.ToDomain()
	}
	return messages, nil
}
