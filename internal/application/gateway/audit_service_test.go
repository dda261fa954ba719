package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/codatendechat/gateway/internal/domain/gateway"
)

// mockLogRepository signals every insert so tests can wait on the async write.
type mockLogRepository struct {
	inserted  chan *gateway.ApiLogEntry
	insertErr error
}

func newMockLogRepository() *mockLogRepository {
	return &mockLogRepository{inserted: make(chan *gateway.ApiLogEntry, 8)}
}

func (m *mockLogRepository) Insert(_ context.Context, entry *gateway.ApiLogEntry) error {
	m.inserted <- entry
	return m.insertErr
}

func waitForEntry(t *testing.T, inserted <-chan *gateway.ApiLogEntry) *gateway.ApiLogEntry {
	t.Helper()
	select {
	case entry := <-inserted:
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("expected audit entry")
		return nil
	}
}

func TestAuditService_Record(t *testing.T) {
	t.Run("writes the entry asynchronously", func(t *testing.T) {
		repo := newMockLogRepository()
		svc := NewAuditService(repo, zap.NewNop())

		svc.Record(&gateway.ApiLogEntry{
			Endpoint:       "/contacts",
			Method:         "GET",
			ResponseStatus: 200,
		})

		entry := waitForEntry(t, repo.inserted)
		assert.Equal(t, "/contacts", entry.Endpoint)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("swallows insert failures", func(t *testing.T) {
		repo := newMockLogRepository()
		repo.insertErr = assert.AnError
		svc := NewAuditService(repo, zap.NewNop())

		svc.Record(&gateway.ApiLogEntry{Endpoint: "/tickets", Method: "POST", ResponseStatus: 201})

		waitForEntry(t, repo.inserted)
	})

	t.Run("keeps an explicit created_at", func(t *testing.T) {
		repo := newMockLogRepository()
		svc := NewAuditService(repo, zap.NewNop())
		at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		svc.Record(&gateway.ApiLogEntry{Endpoint: "/", Method: "GET", ResponseStatus: 200, CreatedAt: at})

		entry := waitForEntry(t, repo.inserted)
		assert.Equal(t, at, entry.CreatedAt)
	})
}

func TestSummarizeResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "paginated list shrinks to total",
			status: 200,
			body:   `{"data":[{"id":"a"},{"id":"b"}],"total":17,"limit":50,"offset":0}`,
			want:   `{"total":17}`,
		},
		{
			name:   "directory listing shrinks to count",
			status: 200,
			body:   `{"data":[{"id":"a"},{"id":"b"},{"id":"c"}]}`,
			want:   `{"count":3}`,
		},
		{
			name:   "single entity shrinks to id",
			status: 201,
			body:   `{"data":{"id":"abc-123","name":"Alice"}}`,
			want:   `{"id":"abc-123"}`,
		},
		{
			name:   "send shrinks to success flag",
			status: 200,
			body:   `{"success":true,"data":{"messageId":"wamid.1"}}`,
			want:   `{"success":true}`,
		},
		{
			name:   "error bodies are kept whole",
			status: 403,
			body:   `{"error":"Permission denied","code":"FORBIDDEN"}`,
			want:   `{"error":"Permission denied","code":"FORBIDDEN"}`,
		},
		{
			name:   "unrecognized success shape degrades to empty object",
			status: 200,
			body:   `{"data":"pong"}`,
			want:   `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeResponse(tt.status, []byte(tt.body))

			require.NotNil(t, got)
			assert.JSONEq(t, tt.want, string(got))
		})
	}

	t.Run("non-JSON body yields nil summary", func(t *testing.T) {
		assert.Nil(t, SummarizeResponse(200, []byte("pong")))
		assert.Nil(t, SummarizeResponse(500, []byte("boom")))
	})
}

func TestBuildDocs(t *testing.T) {
	docs := BuildDocs("http://localhost:8080")

	assert.Equal(t, "CoDatendechat External API", docs["name"])
	assert.Equal(t, "http://localhost:8080", docs["base_url"])

	endpoints, ok := docs["endpoints"].(map[string]any)
	require.True(t, ok)
	for _, route := range []string{
		"GET /contacts", "POST /contacts", "PUT /contacts/:id",
		"GET /tickets", "POST /tickets", "PUT /tickets/:id",
		"GET /messages", "POST /messages/send",
		"GET /queues", "GET /tags", "GET /whatsapps",
	} {
		assert.Contains(t, endpoints, route)
	}

	raw, err := json.Marshal(docs)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "x-api-key")
}
