package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /work", h.Work)
	mux.HandleFunc("GET /contact/{id}", h.ContactForm)
	mux.HandleFunc("POST /contact/{id}", h.SubmitContact)
}
