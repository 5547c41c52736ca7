package amethyste

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for every non-2xx response from the API. Message
// carries the message field of the JSON error body when one is present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("amethyste: %d %s", e.StatusCode, msg)
}

// Unauthorized reports whether the request was rejected because of a
// missing or invalid API key.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: status, Message: payload.Message}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
