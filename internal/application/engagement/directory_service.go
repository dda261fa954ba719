package engagement

import (
	"context"

	"github.com/google/uuid"

	"github.com/codatendechat/gateway/internal/domain/engagement"
)

// DirectoryService serves the unpaginated reference listings: queues, tags,
// and WhatsApp connections.
type DirectoryService struct {
	queues    engagement.QueueRepository
	tags      engagement.TagRepository
	whatsapps engagement.WhatsAppRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(
	queues engagement.QueueRepository,
	tags engagement.TagRepository,
	whatsapps engagement.WhatsAppRepository,
) *DirectoryService {
	return &DirectoryService{queues: queues, tags: tags, whatsapps: whatsapps}
}

// ListQueues returns the company's queues in configured board order.
func (s *DirectoryService) ListQueues(ctx context.Context, companyID uuid.UUID) ([]QueueResponse, error) {
	queues, err := s.queues.FindAllForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	items := make([]QueueResponse, len(queues))
	for i, q := range queues {
		items[i] = QueueResponse{
			ID:                q.ID,
			Name:              q.Name,
			Color:             q.Color,
			GreetingMessage:   q.GreetingMessage,
			OutOfHoursMessage: q.OutOfHoursMessage,
		}
	}
	return items, nil
}

// ListTags returns the company's tags ordered by name.
func (s *DirectoryService) ListTags(ctx context.Context, companyID uuid.UUID) ([]TagResponse, error) {
	tags, err := s.tags.FindAllForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	items := make([]TagResponse, len(tags))
	for i, tag := range tags {
		items[i] = TagResponse{
			ID:     tag.ID,
			Name:   tag.Name,
			Color:  tag.Color,
			Kanban: tag.Kanban,
		}
	}
	return items, nil
}

// ListWhatsApps returns the company's WhatsApp connections ordered by name.
func (s *DirectoryService) ListWhatsApps(ctx context.Context, companyID uuid.UUID) ([]WhatsAppResponse, error) {
	connections, err := s.whatsapps.FindAllForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	items := make([]WhatsAppResponse, len(connections))
	for i, conn := range connections {
		items[i] = WhatsAppResponse{
			ID:        conn.ID,
			Name:      conn.Name,
			Status:    conn.Status,
			IsDefault: conn.IsDefault,
			Provider:  conn.Provider,
		}
	}
	return items, nil
}
