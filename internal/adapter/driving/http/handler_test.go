package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/nodestree/studiosite/internal/adapter/driving/http"
	"github.com/nodestree/studiosite/internal/application"
	"github.com/nodestree/studiosite/internal/domain/model"
)

// stubSender accepts every submission.
type stubSender struct{}

func (stubSender) Send(context.Context, model.Submission) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupAPI(t *testing.T) (http.Handler, *application.FormRegistry) {
	t.Helper()

	forms := application.NewFormRegistry(stubSender{}, nil, application.FormRegistryConfig{}, discardLogger())
	t.Cleanup(forms.CloseAll)

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(forms, discardLogger()))
	return httphandler.ApplyMiddleware(mux, discardLogger()), forms
}

func TestHealth(t *testing.T) {
	handler, forms := setupAPI(t)
	forms.Open()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var resp httphandler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Time)
	assert.Equal(t, 1, resp.Forms)
}

func TestGetForm_NotFound(t *testing.T) {
	handler, _ := setupAPI(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/forms/9b2f2c1e-2f7a-4c55-9d8e-0a4f1f9d7c11", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"form not found"}`, rec.Body.String())
}

func TestGetForm_ReportsStatus(t *testing.T) {
	handler, forms := setupAPI(t)
	id, flow := forms.Open()

	get := func() httphandler.FormResponse {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/forms/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp httphandler.FormResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	resp := get()
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "idle", resp.Status)

	_, err := flow.Submit(context.Background(), model.Submission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ProjectType: model.ProjectTypeCommercial,
		Message:     "Hello",
	})
	require.NoError(t, err)

	resp = get()
	assert.Equal(t, "success", resp.Status)
}

func TestGetForm_AcceptsNonCanonicalID(t *testing.T) {
	handler, forms := setupAPI(t)
	id, _ := forms.Open()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/forms/"+strings.ToUpper(id), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httphandler.FormResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
}

func TestGetForm_DoesNotExposeFields(t *testing.T) {
	handler, forms := setupAPI(t)
	id, flow := forms.Open()
	_, _ = flow.Submit(context.Background(), model.Submission{Name: "Secret Name"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/forms/"+id, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Secret Name")
}

func TestApplyMiddleware_RecoversPanics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	var logs bytes.Buffer
	handler := httphandler.ApplyMiddleware(mux, slog.New(slog.NewTextHandler(&logs, nil)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestApplyMiddleware_LogsRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /teapot", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	var logs bytes.Buffer
	handler := httphandler.ApplyMiddleware(mux, slog.New(slog.NewTextHandler(&logs, nil)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, logs.String(), "msg=\"http request\"")
	assert.Contains(t, logs.String(), "status=418")
	assert.Contains(t, logs.String(), "path=/teapot")
}
