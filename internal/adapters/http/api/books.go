package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/shelfrank/internal/adapters/repository"
)

// BooksHandler handles catalog listing and detail requests.
type BooksHandler struct {
	deps Dependencies
}

// NewBooksHandler creates a new books handler.
func NewBooksHandler(deps Dependencies) *BooksHandler {
	return &BooksHandler{deps: deps}
}

// HandleListBooks handles GET /books requests. Every filter, sort and
// scoring parameter arrives as a query parameter; see parseListQuery.
func (h *BooksHandler) HandleListBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	res, err := h.deps.Query(r.Context(), q)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleGetBook handles GET /books/{id} requests.
func (h *BooksHandler) HandleGetBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/books/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("missing book id: %w", ErrBadRequest))
		return
	}
	b, err := h.deps.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
