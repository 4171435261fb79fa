// Package web implements the HTML driving adapter using templ components and
// htmx fragments.
package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/nodestree/studiosite/internal/adapter/driving/web/templates"
	vm "github.com/nodestree/studiosite/internal/adapter/driving/web/viewmodel"
	"github.com/nodestree/studiosite/internal/application"
	"github.com/nodestree/studiosite/internal/domain/model"
	"github.com/nodestree/studiosite/internal/domain/port/driven"
)

// Handler is the web driving adapter that serves the studio page and the
// contact form fragments.
type Handler struct {
	content       driven.ContentSource
	forms         *application.FormRegistry
	secureCookies bool
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	content driven.ContentSource,
	forms *application.FormRegistry,
	secureCookies bool,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		content:       content,
		forms:         forms,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// Home renders the full page with a fresh contact form instance. An optional
// ?category= preselects a gallery filter.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	_, flow := h.forms.Open()
	token := csrfToken(w, r, h.secureCookies)
	form := toContactFormViewModel(flow.Snapshot(), token, nil)
	h.renderPage(w, r, http.StatusOK, r.URL.Query().Get("category"), form)
}

// Work renders the gallery filtered by ?category=. htmx requests get only
// the gallery fragment; anything else gets the full page.
func (h *Handler) Work(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	if !IsHTMXRequest(r) {
		_, flow := h.forms.Open()
		token := csrfToken(w, r, h.secureCookies)
		h.renderPage(w, r, http.StatusOK, category, toContactFormViewModel(flow.Snapshot(), token, nil))
		return
	}

	site, err := h.content.Site(r.Context())
	if err != nil {
		h.logger.Error("failed to load site content", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	projects, err := h.content.Projects(r.Context(), category)
	switch {
	case errors.Is(err, driven.ErrUnknownCategory):
		status = http.StatusNotFound
	case err != nil:
		h.logger.Error("failed to list projects", "category", category, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, status, templates.Gallery(toGalleryViewModel(site.Work, projects, category)))
}

// ContactForm renders the current state of a form instance. The success
// fragment polls this to return to idle once the reset has fired. An expired
// id is re-registered, so a stale page still gets a working form.
func (h *Handler) ContactForm(w http.ResponseWriter, r *http.Request) {
	flow, err := h.forms.Resume(r.PathValue("id"))
	if errors.Is(err, application.ErrInvalidFormID) {
		_, flow = h.forms.Open()
	} else if err != nil {
		h.logger.Error("failed to resume contact form", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token := csrfToken(w, r, h.secureCookies)
	form := toContactFormViewModel(flow.Snapshot(), token, nil)
	if !IsHTMXRequest(r) {
		h.renderPage(w, r, http.StatusOK, "", form)
		return
	}
	h.render(w, r, http.StatusOK, templates.ContactForm(form))
}

// SubmitContact runs one submit through the form instance's flow and renders
// the resulting state. The status code mirrors the outcome: 200 success, 422
// validation failure, 409 already sending, 502 delivery failed.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	flow, err := h.forms.Resume(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid form id", http.StatusBadRequest)
		return
	}

	status := http.StatusOK
	var fieldErrors map[string]string

	state, err := flow.Submit(r.Context(), parseSubmission(r))
	var verr *application.ValidationError
	switch {
	case err == nil && state == model.SubmissionStatusError:
		status = http.StatusBadGateway
	case err == nil:
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
		fieldErrors = verr.Fields
	case errors.Is(err, application.ErrSubmissionInProgress):
		status = http.StatusConflict
	case errors.Is(err, application.ErrFlowClosed):
		// Swept between Resume and Submit; hand back a fresh form instance
		// so the visitor can retry.
		status = http.StatusConflict
		_, flow = h.forms.Open()
	default:
		h.logger.Error("contact submit failed", "form_id", flow.ID(), "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token := csrfToken(w, r, h.secureCookies)
	form := toContactFormViewModel(flow.Snapshot(), token, fieldErrors)
	if !IsHTMXRequest(r) {
		h.renderPage(w, r, status, "", form)
		return
	}
	h.render(w, r, status, templates.ContactForm(form))
}

// maxFormMemory bounds the in-memory part of a multipart submit.
const maxFormMemory = 1 << 20

// parseSubmission reads the contact fields from a parsed form. Accepts both
// urlencoded and multipart bodies.
func parseSubmission(r *http.Request) model.Submission {
	return model.Submission{
		Name:        r.PostFormValue(model.FieldName),
		Email:       r.PostFormValue(model.FieldEmail),
		ProjectType: model.ParseProjectType(r.PostFormValue(model.FieldProjectType)),
		Message:     r.PostFormValue(model.FieldMessage),
	}
}

// renderPage renders the full layout around form. An unknown category falls
// back to the full gallery.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, category string, form vm.ContactFormViewModel) {
	site, err := h.content.Site(r.Context())
	if err != nil {
		h.logger.Error("failed to load site content", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	projects, err := h.content.Projects(r.Context(), category)
	if errors.Is(err, driven.ErrUnknownCategory) {
		category = ""
		projects, err = h.content.Projects(r.Context(), "")
	}
	if err != nil {
		h.logger.Error("failed to list projects", "category", category, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := toHomePageViewModel(site, projects, category, form)
	h.render(w, r, status, templates.Layout(page.Title, templates.Home(page)))
}

// render buffers the component so a render error can still produce a clean
// 500 instead of a truncated page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render component", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "HX-Request")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
