package api

import (
	"fmt"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/invoicekit/pkg/storage"
)

type archiveListing struct {
	Dir     string          `json:"dir"`
	Entries []storage.Entry `json:"entries"`
}

// requireStore writes 503 and reports false when archiving is disabled.
func (h *Handler) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if h.store == nil {
		h.writeError(w, r, fmt.Errorf("%w: storage", ErrNotConfigured))
		return false
	}
	return true
}

// listArchive lists the direct children of the "dir" query parameter.
func (h *Handler) listArchive(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	dir := r.URL.Query().Get("dir")
	entries, err := h.store.List(r.Context(), dir)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []storage.Entry{}
	}
	writeJSON(w, http.StatusOK, archiveListing{Dir: dir, Entries: entries})
}

func (h *Handler) getArchived(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	key := chi.URLParam(r, "*")
	data, err := h.store.Get(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeOf(key))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) headArchived(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	key := chi.URLParam(r, "*")
	if !h.store.Exists(r.Context(), key) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", contentTypeOf(key))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteArchived(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "*")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func contentTypeOf(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
