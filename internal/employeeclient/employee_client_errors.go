package employeeclient

import (
	"encoding/json"
	"strings"
)

// ExtractMessage pulls the human-readable message out of an error body.
// Backends disagree on the key: {"error": "..."}, {"message": "..."},
// {"error": {"message": "..."}} and ProblemDetails {"title": "..."} are
// all accepted. Plain-text bodies are returned trimmed.
func ExtractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		var s string
		if json.Unmarshal(body, &s) == nil {
			return strings.TrimSpace(s)
		}
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "<") {
			return ""
		}
		return trimmed
	}

	for _, key := range []string{"error", "message", "title"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &nested) == nil && strings.TrimSpace(nested.Message) != "" {
			return strings.TrimSpace(nested.Message)
		}
	}
	return ""
}
