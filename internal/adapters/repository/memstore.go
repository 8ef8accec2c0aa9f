package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/metrics"
)

// MemStore is a mutex-guarded in-memory Roster. The catalog is fixed at
// construction time; only participant rosters change afterwards. A single
// coarse lock is plenty at this scale and keeps the check-then-mutate
// sequences of Signup and Remove atomic.
type MemStore struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	// order preserves catalog insertion order for List snapshots.
	order []string
}

var _ Roster = (*MemStore)(nil)

// NewMemStore creates an empty in-memory roster and applies options.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		activities: make(map[string]*model.Activity),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.publishGauges()
	return s
}

// List returns a deep-copied snapshot of every activity keyed by name.
func (s *MemStore) List(_ context.Context) (map[string]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Get returns a deep-copied snapshot of one activity.
func (s *MemStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the named activity's roster.
// Capacity is advisory: a roster may grow past MaxParticipants.
func (s *MemStore) Signup(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	s.publishGauges()
	return nil
}

// Remove deletes email from the named activity's roster.
func (s *MemStore) Remove(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return ErrNotSignedUp
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	s.publishGauges()
	return nil
}

// Counts returns the number of activities and total roster entries.
func (s *MemStore) Counts(_ context.Context) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities), s.participantCountLocked()
}

// Names returns catalog names in insertion order.
func (s *MemStore) Names(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// add inserts one activity under the store's write lock. Used by options
// during construction; later catalog mutation is not supported.
func (s *MemStore) add(name string, a model.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.activities[name]; !ok {
		s.order = append(s.order, name)
	}
	clone := a.Clone()
	s.activities[name] = &clone
}

// participantCountLocked sums roster sizes; callers hold at least a read lock.
func (s *MemStore) participantCountLocked() int {
	total := 0
	for _, a := range s.activities {
		total += len(a.Participants)
	}
	return total
}

func (s *MemStore) publishGauges() {
	metrics.UpdateActivityCount(len(s.activities))
	metrics.UpdateParticipantCount(s.participantCountLocked())
}
