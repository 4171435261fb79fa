package web

import (
	"net/http"
	"strings"
)

// IsHTMXRequest reports whether the request was issued by htmx. History
// restoration requests want the full page, so they do not count.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	if !strings.EqualFold(r.Header.Get("HX-Request"), "true") {
		return false
	}
	return !strings.EqualFold(r.Header.Get("HX-History-Restore-Request"), "true")
}
