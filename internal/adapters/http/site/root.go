// Package site serves the embedded catalog explorer UI.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded explorer UI routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded explorer at root /
	files := http.FileServer(FS())
	mux.Handle("/", files)
}

// RootHandler handles root path requests
type RootHandler struct{}

// NewRootHandler creates a new root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests and serves the embedded explorer UI
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	files := http.FileServer(FS())
	files.ServeHTTP(w, r)
}
