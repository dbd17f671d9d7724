package api

import "net/http"

// ReloadHandler handles dataset reload requests.
type ReloadHandler struct {
	deps Dependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps Dependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

// HandleReload handles POST /reload requests. The dataset is re-read from
// disk and the corpus snapshot swapped atomically; queries in flight keep
// their old snapshot.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	summary, err := h.deps.Reload(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
