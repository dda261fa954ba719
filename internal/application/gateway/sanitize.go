package gateway

import (
	"encoding/json"
	"strings"
)

// sensitiveKeyFragments flags a JSON key as sensitive when its lowercase
// form contains any of them. "key" also catches api_key and x-api-key.
var sensitiveKeyFragments = []string{"password", "token", "key", "secret", "authorization"}

const redacted = "***"

// SanitizeValue deep-walks a decoded JSON value and replaces the value of
// every sensitive map key with "***". Arrays and nested objects are
// recursed; scalars pass through. Idempotent.
func SanitizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		sanitized := make(map[string]any, len(v))
		for key, inner := range v {
			if isSensitiveKey(key) {
				sanitized[key] = redacted
				continue
			}
			sanitized[key] = SanitizeValue(inner)
		}
		return sanitized
	case []any:
		sanitized := make([]any, len(v))
		for i, item := range v {
			sanitized[i] = SanitizeValue(item)
		}
		return sanitized
	default:
		return value
	}
}

// SanitizeJSON sanitizes a raw JSON document. Anything that does not decode
// is audited as an empty object rather than failing the audit write.
func SanitizeJSON(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("{}")
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return json.RawMessage("{}")
	}

	sanitized, err := json.Marshal(SanitizeValue(value))
	if err != nil {
		return json.RawMessage("{}")
	}
	return sanitized
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, fragment := range sensitiveKeyFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
