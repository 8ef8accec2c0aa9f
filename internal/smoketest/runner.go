package smoketest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mergington/activities/pkg/logger"
)

// Run executes the complete signup/remove smoke test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	log := logger.Get()
	log.Info(ctx, "starting activities smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.String("activity", config.Activity),
		logger.Int("students", config.Students),
		logger.String("timeout", config.Timeout.String()),
	)

	client := newClient(config)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Confirm the target activity exists in the catalog
	activities, err := fetchActivities(ctx, client, config)
	if err != nil {
		return fmt.Errorf("catalog fetch failed: %w", err)
	}
	if _, ok := activities[config.Activity]; !ok {
		return fmt.Errorf("activity %q not in catalog", config.Activity)
	}

	// Step 3: Verify the root redirect
	if err := checkRootRedirect(ctx, config); err != nil {
		return fmt.Errorf("root redirect check failed: %w", err)
	}

	// Step 4: Cycle synthetic students through signup -> duplicate -> remove
	for i := 0; i < config.Students; i++ {
		email := fmt.Sprintf("smoke-%d@mergington.edu", i)
		if err := cycleStudent(ctx, client, config, email, stats); err != nil {
			stats.Failures++
			log.Warn(ctx, "student cycle failed",
				logger.String("email", email),
				logger.Error(err),
			)
		}
		if config.Verbose {
			log.Debug(ctx, "student cycle done", logger.String("email", email))
		}
	}

	// Step 5: Confirm rosters returned to their initial size
	after, err := fetchActivities(ctx, client, config)
	if err != nil {
		return fmt.Errorf("final catalog fetch failed: %w", err)
	}
	before := len(activities[config.Activity].Participants)
	if got := len(after[config.Activity].Participants); got != before {
		return fmt.Errorf("roster size changed: had %d, now %d", before, got)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "smoke test complete",
		logger.Int("signups", stats.Signups),
		logger.Int("removals", stats.Removals),
		logger.Int("failures", stats.Failures),
		logger.String("duration", stats.Duration.String()),
	)

	if stats.Failures > 0 {
		return fmt.Errorf("%d student cycles failed", stats.Failures)
	}
	return nil
}

// cycleStudent signs a student up, asserts the duplicate is rejected, then
// removes them and asserts a second removal is rejected.
func cycleStudent(ctx context.Context, client *http.Client, config *Config, email string, stats *Stats) error {
	status, err := rosterMutation(ctx, client, config, http.MethodPost, "signup", email)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("signup status %d", status)
	}
	stats.Signups++

	status, err = rosterMutation(ctx, client, config, http.MethodPost, "signup", email)
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("duplicate signup status %d, want 400", status)
	}

	status, err = rosterMutation(ctx, client, config, http.MethodDelete, "remove", email)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("remove status %d", status)
	}
	stats.Removals++

	status, err = rosterMutation(ctx, client, config, http.MethodDelete, "remove", email)
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("second remove status %d, want 400", status)
	}
	return nil
}
