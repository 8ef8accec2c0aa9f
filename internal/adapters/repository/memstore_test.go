package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/mergington/activities/internal/domain/model"
)

func newTestStore(ctx context.Context) *MemStore {
	return NewMemStore(ctx, WithDefaultCatalog())
}

func TestMemStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	activities, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activities) == 0 {
		t.Fatal("expected seeded catalog, got empty map")
	}

	a, ok := activities["Basketball Team"]
	if !ok {
		t.Fatal("expected Basketball Team in catalog")
	}
	if !a.HasParticipant("alex@mergington.edu") {
		t.Error("expected alex@mergington.edu pre-registered in Basketball Team")
	}
	if a.MaxParticipants <= 0 {
		t.Error("expected positive max participants")
	}

	// The snapshot must be detached from the live store.
	a.Participants[0] = "mutated@mergington.edu"
	fresh, err := store.Get(ctx, "Basketball Team")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fresh.HasParticipant("alex@mergington.edu") {
		t.Error("List snapshot leaked the live roster slice")
	}
}

func TestMemStore_Signup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	if err := store.Signup(ctx, "Drama Club", "newstudent@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := store.Get(ctx, "Drama Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.HasParticipant("newstudent@mergington.edu") {
		t.Error("expected new student on the roster after signup")
	}
}

func TestMemStore_SignupDuplicate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	err := store.Signup(ctx, "Basketball Team", "alex@mergington.edu")
	if !errors.Is(err, ErrAlreadySignedUp) {
		t.Errorf("expected ErrAlreadySignedUp, got %v", err)
	}
}

func TestMemStore_SignupUnknownActivity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	err := store.Signup(ctx, "Nonexistent Activity", "student@mergington.edu")
	if !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestMemStore_SignupNoCapacityEnforcement(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore(ctx, WithActivity("Tiny Club", model.Activity{
		Description:     "A club with one seat",
		Schedule:        "Mondays",
		MaxParticipants: 1,
		Participants:    []string{},
	}))

	// Capacity is advisory; every signup past the limit still succeeds.
	for i := 0; i < 3; i++ {
		email := fmt.Sprintf("student-%d@mergington.edu", i)
		if err := store.Signup(ctx, "Tiny Club", email); err != nil {
			t.Fatalf("signup %d: unexpected error: %v", i, err)
		}
	}

	a, err := store.Get(ctx, "Tiny Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Participants) != 3 {
		t.Errorf("expected 3 participants past capacity, got %d", len(a.Participants))
	}
}

func TestMemStore_Remove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	if err := store.Remove(ctx, "Basketball Team", "alex@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := store.Get(ctx, "Basketball Team")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.HasParticipant("alex@mergington.edu") {
		t.Error("expected alex@mergington.edu removed from the roster")
	}
}

func TestMemStore_RemoveNotSignedUp(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	err := store.Remove(ctx, "Basketball Team", "notstudent@mergington.edu")
	if !errors.Is(err, ErrNotSignedUp) {
		t.Errorf("expected ErrNotSignedUp, got %v", err)
	}
}

func TestMemStore_RemoveUnknownActivity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	err := store.Remove(ctx, "Nonexistent Activity", "student@mergington.edu")
	if !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestMemStore_RemovePreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore(ctx, WithActivity("Order Club", model.Activity{
		Participants: []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"},
	}))

	if err := store.Remove(ctx, "Order Club", "b@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := store.Get(ctx, "Order Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a@mergington.edu", "c@mergington.edu"}
	if len(a.Participants) != len(want) {
		t.Fatalf("expected %v, got %v", want, a.Participants)
	}
	for i := range want {
		if a.Participants[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, a.Participants)
		}
	}
}

func TestMemStore_SignupAfterRemove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)
	email := "testuser@mergington.edu"

	if err := store.Signup(ctx, "Drama Club", email); err != nil {
		t.Fatalf("signup: unexpected error: %v", err)
	}
	if err := store.Remove(ctx, "Drama Club", email); err != nil {
		t.Fatalf("remove: unexpected error: %v", err)
	}
	// No residual state blocks re-registration.
	if err := store.Signup(ctx, "Drama Club", email); err != nil {
		t.Fatalf("re-signup: unexpected error: %v", err)
	}

	a, err := store.Get(ctx, "Drama Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.HasParticipant(email) {
		t.Error("expected membership after signup/remove/signup cycle")
	}
}

func TestMemStore_Counts(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore(ctx,
		WithActivity("One", model.Activity{Participants: []string{"a@mergington.edu"}}),
		WithActivity("Two", model.Activity{Participants: []string{"b@mergington.edu", "c@mergington.edu"}}),
	)

	activities, participants := store.Counts(ctx)
	if activities != 2 {
		t.Errorf("expected 2 activities, got %d", activities)
	}
	if participants != 3 {
		t.Errorf("expected 3 participants, got %d", participants)
	}
}

func TestMemStore_Names(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	names := store.Names(ctx)
	if len(names) != len(DefaultCatalog()) {
		t.Fatalf("expected %d names, got %d", len(DefaultCatalog()), len(names))
	}
	// Insertion order is preserved.
	for i, e := range DefaultCatalog() {
		if names[i] != e.Name {
			t.Errorf("name %d: expected %q, got %q", i, e.Name, names[i])
		}
	}
}

func TestMemStore_ConcurrentSignups(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("concurrent-%d@mergington.edu", i)
			if err := store.Signup(ctx, "Gym Class", email); err != nil {
				t.Errorf("signup %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	a, err := store.Get(ctx, "Gym Class")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seeded := 0
	for _, e := range DefaultCatalog() {
		if e.Name == "Gym Class" {
			seeded = len(e.Activity.Participants)
		}
	}
	if len(a.Participants) != seeded+n {
		t.Errorf("expected %d participants, got %d (lost updates?)", seeded+n, len(a.Participants))
	}
}
