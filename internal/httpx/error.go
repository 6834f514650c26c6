// Package httpx writes the JSON bodies of the site's small API surface.
package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// Error is a rejected request. Field and Value name the offending input, if any.
type Error struct {
	Code    string
	Message string
	Status  int
	Field   string
	Value   string
}

// NewError returns an Error; a zero status means 500.
func NewError(code, message string, status int) Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Error{Code: oneLine(code, 80), Message: oneLine(message, 512), Status: status}
}

// For points the error at one input field.
func (e Error) For(field, value string) Error {
	e.Field = oneLine(field, 80)
	e.Value = oneLine(value, 200)
	return e
}

func (e Error) Error() string { return e.Code + ": " + e.Message }

type envelope struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
	Field     string `json:"field,omitempty"`
	Value     string `json:"value,omitempty"`
}

// WriteError answers with the error envelope, tagged with chi's request id.
func WriteError(ctx context.Context, w http.ResponseWriter, err Error) {
	if err.Status == 0 {
		err.Status = http.StatusInternalServerError
	}
	WriteJSON(w, err.Status, envelope{
		Error:     err.Code,
		Message:   err.Message,
		Status:    err.Status,
		RequestID: requestID(ctx),
		Field:     err.Field,
		Value:     err.Value,
	})
}

// WriteJSON encodes v as an uncacheable JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return oneLine(middleware.GetReqID(ctx), 80)
}

func oneLine(s string, limit int) string {
	s = strings.TrimSpace(strings.NewReplacer("\n", " ", "\r", " ").Replace(s))
	if len(s) > limit {
		s = s[:limit]
	}
	return s
}
