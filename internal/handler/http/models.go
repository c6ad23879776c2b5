package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// serveModel serves a single file from the models directory. Directory
// listings are not exposed.
func (h *Handler) serveModel(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if name == "" || strings.HasSuffix(name, "/") {
		http.NotFound(w, r)
		return
	}

	h.models.ServeHTTP(w, r)
}
