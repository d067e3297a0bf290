package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound matches any 404 from the backend via errors.Is
var ErrNotFound = errors.New("backend: not found")

// APIError is a non-2xx backend response
type APIError struct {
	StatusCode int
	// Detail is the response's detail field, or the operation fallback when absent
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: API error (%d): %s", e.StatusCode, e.Detail)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Message returns the text to show a user for err
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	if errors.Is(err, context.Canceled) {
		return "request cancelled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}

// StatusCode returns the backend status carried by err, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// parseDetail extracts the FastAPI detail message from an error body
func parseDetail(body []byte, fallback string) string {
	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}

	switch d := payload.Detail.(type) {
	case string:
		if d != "" {
			return d
		}
	case []any:
		msgs := make([]string, 0, len(d))
		for _, item := range d {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if msg, ok := entry["msg"].(string); ok && msg != "" {
				msgs = append(msgs, msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return fallback
}
