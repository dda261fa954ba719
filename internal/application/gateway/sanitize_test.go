package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeValue(t *testing.T) {
	t.Run("redacts sensitive keys at any depth", func(t *testing.T) {
		input := map[string]any{
			"name":     "Alice",
			"password": "hunter2",
			"profile": map[string]any{
				"api_key": "abc123",
				"email":   "alice@example.com",
			},
			"sessions": []any{
				map[string]any{"refresh_token": "tok", "device": "ios"},
			},
		}

		got := SanitizeValue(input).(map[string]any)

		assert.Equal(t, "Alice", got["name"])
		assert.Equal(t, "***", got["password"])
		profile := got["profile"].(map[string]any)
		assert.Equal(t, "***", profile["api_key"])
		assert.Equal(t, "alice@example.com", profile["email"])
		session := got["sessions"].([]any)[0].(map[string]any)
		assert.Equal(t, "***", session["refresh_token"])
		assert.Equal(t, "ios", session["device"])
	})

	t.Run("matches key fragments case-insensitively", func(t *testing.T) {
		got := SanitizeValue(map[string]any{
			"Authorization": "Bearer abc",
			"clientSecret":  "s3cret",
			"X-Api-Key":     "k",
		}).(map[string]any)

		assert.Equal(t, "***", got["Authorization"])
		assert.Equal(t, "***", got["clientSecret"])
		assert.Equal(t, "***", got["X-Api-Key"])
	})

	t.Run("leaves scalars and clean structures untouched", func(t *testing.T) {
		assert.Equal(t, "hello", SanitizeValue("hello"))
		assert.Equal(t, 42.0, SanitizeValue(42.0))
		assert.Nil(t, SanitizeValue(nil))

		got := SanitizeValue(map[string]any{"name": "a", "number": "1"}).(map[string]any)
		assert.Equal(t, map[string]any{"name": "a", "number": "1"}, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		input := map[string]any{"password": "x", "nested": map[string]any{"token": "y"}}

		once := SanitizeValue(input)
		twice := SanitizeValue(once)

		assert.Equal(t, once, twice)
	})
}

func TestSanitizeJSON(t *testing.T) {
	t.Run("sanitizes a raw document", func(t *testing.T) {
		raw := []byte(`{"name":"Alice","password":"hunter2"}`)

		got := SanitizeJSON(raw)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(got, &decoded))
		assert.Equal(t, "Alice", decoded["name"])
		assert.Equal(t, "***", decoded["password"])
	})

	t.Run("degrades malformed JSON to an empty object", func(t *testing.T) {
		assert.Equal(t, json.RawMessage("{}"), SanitizeJSON([]byte("{broken")))
		assert.Equal(t, json.RawMessage("{}"), SanitizeJSON(nil))
	})
}
