// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// RosterDependencies defines the interface for roster mutations.
type RosterDependencies interface {
	Signup(ctx context.Context, activity, email string) error
	Remove(ctx context.Context, activity, email string) error
}

// RosterHandler handles signup and removal requests under /activities/.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleRoster dispatches requests of the form
// /activities/{name}/signup and /activities/{name}/remove.
// Activity names may contain spaces; the mux hands us the decoded path.
func (h *RosterHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		http.NotFound(w, r)
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	switch action {
	case "signup":
		h.handleSignup(w, r, name)
	case "remove":
		h.handleRemove(w, r, name)
	default:
		http.NotFound(w, r)
	}
}

// handleSignup handles POST /activities/{name}/signup?email= requests.
func (h *RosterHandler) handleSignup(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, detailMissingEmail)
		return
	}
	if err := h.deps.Signup(r.Context(), name, email); err != nil {
		writeRosterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// handleRemove handles DELETE /activities/{name}/remove?email= requests.
func (h *RosterHandler) handleRemove(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, detailMissingEmail)
		return
	}
	if err := h.deps.Remove(r.Context(), name, email); err != nil {
		writeRosterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, name),
	})
}
