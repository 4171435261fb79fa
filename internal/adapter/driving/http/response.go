package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nodestree/studiosite/internal/application"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Forms  int    `json:"forms"`
}

// FormResponse is the JSON representation of a contact form instance.
type FormResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	LastActive string `json:"last_active"`
}

func toFormResponse(snap application.FlowSnapshot) FormResponse {
	return FormResponse{
		ID:         snap.ID,
		Status:     string(snap.Status),
		LastActive: snap.LastActive.UTC().Format(time.RFC3339),
	}
}
