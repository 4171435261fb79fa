// Package httphandler implements the JSON API driving adapter and the HTTP
// middleware shared by every route.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nodestree/studiosite/internal/application"
)

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	forms  *application.FormRegistry
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(forms *application.FormRegistry, logger *slog.Logger) *Handler {
	return &Handler{
		forms:  forms,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterAPIRoutes registers the JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/forms/{id}", h.GetForm)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   h.now().UTC().Format(time.RFC3339),
		Forms:  h.forms.Len(),
	})
}

// GetForm returns the submission status of a live form instance. Field
// values are never exposed.
func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.forms.Lookup(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	writeJSON(w, http.StatusOK, toFormResponse(flow.Snapshot()))
}
