package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body for non-2xx API responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a JSON error response, tagging it with the request's
// trace ID for log correlation.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Success: false,
		Error:   message,
		TraceID: TraceIDFrom(r.Context()),
	})
}
