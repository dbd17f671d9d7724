package api

import "net/http"

// FacetsHandler handles facet listing requests.
type FacetsHandler struct {
	deps Dependencies
}

// NewFacetsHandler creates a new facets handler.
func NewFacetsHandler(deps Dependencies) *FacetsHandler {
	return &FacetsHandler{deps: deps}
}

// HandleGetFacets handles GET /facets requests.
func (h *FacetsHandler) HandleGetFacets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Facets(r.Context()))
}
