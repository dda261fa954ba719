package gateway

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/codatendechat/gateway/internal/domain/gateway"
)

const defaultAuditTimeout = 5 * time.Second

// AuditService appends request audit entries best-effort. A failed write is
// logged and swallowed; it never alters the response already sent.
type AuditService struct {
	logs    gateway.ApiLogRepository
	logger  *zap.Logger
	timeout time.Duration
}

// NewAuditService creates a new AuditService
func NewAuditService(logs gateway.ApiLogRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		logs:    logs,
		logger:  logger,
		timeout: defaultAuditTimeout,
	}
}

// Record appends one audit entry fire-and-forget. The background context
// keeps the insert alive past request cancellation but bounds it in time.
func (s *AuditService) Record(entry *gateway.ApiLogEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.logs.Insert(ctx, entry); err != nil {
			s.logger.Error("failed to write audit entry",
				zap.String("endpoint", entry.Endpoint),
				zap.String("method", entry.Method),
				zap.Int("response_status", entry.ResponseStatus),
				zap.Error(err),
			)
		}
	}()
}

// SummarizeResponse condenses a response body into what the audit trail
// keeps. Error bodies are kept whole; success bodies shrink to their key
// figure so the trail never duplicates tenant data:
// paginated lists to {total}, directory listings to {count},
// single entities to {id}, sends to {success:true}.
func SummarizeResponse(status int, body []byte) json.RawMessage {
	if status < 200 || status >= 300 {
		if json.Valid(body) {
			return body
		}
		return nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil
	}

	if _, ok := decoded["success"]; ok {
		return json.RawMessage(`{"success":true}`)
	}
	if total, ok := decoded["total"]; ok {
		summary, _ := json.Marshal(map[string]any{"total": total})
		return summary
	}
	switch data := decoded["data"].(type) {
	case []any:
		summary, _ := json.Marshal(map[string]any{"count": len(data)})
		return summary
	case map[string]any:
		if id, ok := data["id"]; ok {
			summary, _ := json.Marshal(map[string]any{"id": id})
			return summary
		}
	}
	return json.RawMessage("{}")
}
