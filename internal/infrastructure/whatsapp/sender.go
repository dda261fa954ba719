// Package whatsapp calls the platform's send-message service, which owns the
// actual WhatsApp provider sessions. The gateway never talks to providers
// directly.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/infrastructure/config"
	"github.com/codatendechat/gateway/internal/infrastructure/telemetry"
)

const defaultTimeout = 30 * time.Second

// HTTPSender implements engagement.MessageSender over the send-message
// service's HTTP API.
type HTTPSender struct {
	url        string
	serviceKey string
	client     *http.Client
}

// NewHTTPSender creates a sender from configuration.
func NewHTTPSender(cfg *config.SenderConfig) *HTTPSender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSender{
		url:        cfg.URL,
		serviceKey: cfg.ServiceKey,
		client:     &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	WhatsappID string `json:"whatsappId"`
	Number     string `json:"number"`
	Message    string `json:"message"`
	MediaURL   string `json:"mediaUrl,omitempty"`
	CompanyID  string `json:"companyId"`
}

// Send delegates one message to the send-message service.
func (s *HTTPSender) Send(ctx context.Context, input engagement.SendMessageInput) (result *engagement.SendMessageResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "whatsapp.send",
		attribute.String("whatsapp.id", input.WhatsAppID.String()),
		attribute.String("company.id", input.CompanyID.String()),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	payload := sendRequest{
		WhatsappID: input.WhatsAppID.String(),
		Number:     input.Number,
		Message:    input.Message,
		MediaURL:   input.MediaURL,
		CompanyID:  input.CompanyID.String(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send-message service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read send response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("send-message service returned %d: %s", resp.StatusCode, string(respBody))
	}

	raw := map[string]any{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &raw); err != nil {
			return nil, fmt.Errorf("send-message service returned invalid JSON: %w", err)
		}
	}

	return &engagement.SendMessageResult{Raw: raw}, nil
}
