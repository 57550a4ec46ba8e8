// Package site serves the embedded dashboard single-page app.
package site

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

// Error constants.
var (
	ErrServe = errors.New("dashboard site serve failed")
)

// Register attaches the embedded dashboard routes to the router. It claims
// the catch-all prefix, so it must be registered after the API routes.
func Register(_ context.Context, r *mux.Router) {
	if r == nil {
		panic("router is nil")
	}

	files := http.FileServer(FS())
	r.PathPrefix("/").Handler(files).Methods(http.MethodGet)
}
