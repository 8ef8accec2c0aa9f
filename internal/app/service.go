// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service implements the API dependencies for the activities system.
type Service struct {
	mu sync.RWMutex

	// Core components
	roster repository.Roster

	// Configuration
	catalog []repository.SeedActivity

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRoster sets a pre-built roster store, replacing the default in-memory one.
func WithRoster(r repository.Roster) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithCatalog overrides the seed catalog used when the service builds its
// own store on Start.
func WithCatalog(catalog []repository.SeedActivity) Option {
	return func(s *Service) {
		if len(catalog) > 0 {
			s.catalog = catalog
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalog: repository.DefaultCatalog(),
		logger:  nil, // Resolved on Start
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activities service...")

	if s.roster == nil {
		s.roster = repository.NewMemStore(ctx, repository.WithCatalog(s.catalog))
	}

	activities, participants := s.roster.Counts(ctx)
	s.started = true
	s.logger.Info(ctx, "activities service started",
		logger.Int("activities", activities),
		logger.Int("participants", participants),
	)

	return nil
}

// Stop shuts down the service. The roster is in-memory only, so there is
// nothing to flush; rosters vanish with the process.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "activities service stopped")
	s.started = false
}

// ListActivities returns a snapshot of the whole catalog keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]model.Activity, error) {
	return s.roster.List(ctx)
}

// Signup registers email for the named activity.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	err := s.roster.Signup(ctx, activity, email)
	switch {
	case err == nil:
		metrics.RecordSignup()
		s.logger.Info(ctx, "signed up participant",
			logger.String("activity", activity),
			logger.String("email", email),
		)
	case errors.Is(err, repository.ErrActivityNotFound):
		metrics.RecordRejection("signup", "activity_not_found")
	case errors.Is(err, repository.ErrAlreadySignedUp):
		metrics.RecordRejection("signup", "already_signed_up")
	}
	return err
}

// Remove unregisters email from the named activity.
func (s *Service) Remove(ctx context.Context, activity, email string) error {
	err := s.roster.Remove(ctx, activity, email)
	switch {
	case err == nil:
		metrics.RecordRemoval()
		s.logger.Info(ctx, "removed participant",
			logger.String("activity", activity),
			logger.String("email", email),
		)
	case errors.Is(err, repository.ErrActivityNotFound):
		metrics.RecordRejection("remove", "activity_not_found")
	case errors.Is(err, repository.ErrNotSignedUp):
		metrics.RecordRejection("remove", "not_signed_up")
	}
	return err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		activities, participants := s.roster.Counts(ctx)
		stats["activities"] = activities
		stats["participants"] = participants

		metrics.UpdateActivityCount(activities)
		metrics.UpdateParticipantCount(participants)
	}

	return stats
}
