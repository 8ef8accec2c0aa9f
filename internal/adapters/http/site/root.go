// Package site serves the embedded signup front end.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("site serve failed")
)

// indexPath is where the root path redirects to.
const indexPath = "/static/index.html"

// Register attaches the front-end routes to mux:
//
//	GET /          -> 307 redirect to /static/index.html
//	GET /static/*  -> embedded assets
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/", handleRoot)
}

// handleRoot redirects the bare root to the landing page. Everything else
// that fell through the mux is a 404.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	// 307 keeps the method, matching the original service's redirect.
	http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
}
