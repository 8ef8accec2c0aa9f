// Package model contains domain models passed between layers.
package model

import "slices"

// Activity describes one extracurricular offering. The activity name is the
// catalog key and is intentionally not part of the record, mirroring the
// response shape of GET /activities.
type Activity struct {
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	// MaxParticipants is advisory capacity only; signups are never
	// rejected for exceeding it.
	MaxParticipants int `json:"max_participants"`
	// Participants holds student emails in signup order.
	Participants []string `json:"participants"`
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the live roster slice.
func (a *Activity) Clone() Activity {
	c := *a
	// A non-nil roster keeps participants encodable as [] rather than null.
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}
