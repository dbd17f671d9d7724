// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/shelfrank/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Query returns one scored, filtered, ranked page of the catalog.
	Query(ctx context.Context, q types.Query) (types.Result, error)

	// Get returns a single catalog entry by id.
	Get(ctx context.Context, id string) (types.Book, error)

	// Facets lists the distinct filterable values of the corpus.
	Facets(ctx context.Context) types.Facets

	// Reload re-reads the dataset and swaps the corpus snapshot.
	Reload(ctx context.Context) (types.LoadSummary, error)
}

// Server wires HTTP routes for the catalog API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	booksHandler  *BooksHandler
	facetsHandler *FacetsHandler
	reloadHandler *ReloadHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		booksHandler:  NewBooksHandler(deps),
		facetsHandler: NewFacetsHandler(deps),
		reloadHandler: NewReloadHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/books", MetricsMiddleware(s.booksHandler.HandleListBooks, "books"))
	mux.HandleFunc("/books/", MetricsMiddleware(s.booksHandler.HandleGetBook, "book"))
	mux.HandleFunc("/facets", MetricsMiddleware(s.facetsHandler.HandleGetFacets, "facets"))
	mux.HandleFunc("/reload", MetricsMiddleware(s.reloadHandler.HandleReload, "reload"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
