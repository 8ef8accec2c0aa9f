// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Roster provides read/write access to the activity catalog and its
// participant rosters.
type Roster interface {
	// List returns a deep-copied snapshot of every activity keyed by name.
	List(ctx context.Context) (map[string]model.Activity, error)

	// Get returns a deep-copied snapshot of one activity.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the named activity's roster.
	// Returns ErrActivityNotFound or ErrAlreadySignedUp.
	Signup(ctx context.Context, name, email string) error

	// Remove deletes email from the named activity's roster, preserving
	// the order of the remaining entries.
	// Returns ErrActivityNotFound or ErrNotSignedUp.
	Remove(ctx context.Context, name, email string) error

	// Counts returns the number of activities and total roster entries.
	Counts(ctx context.Context) (activities, participants int)
}
