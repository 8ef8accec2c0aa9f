package smoketest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mergington/activities/internal/domain/model"
)

// newClient builds the HTTP client used for all requests in a run.
func newClient(config *Config) *http.Client {
	return &http.Client{Timeout: config.Timeout}
}

// checkServiceHealth verifies the service answers on /healthz.
func checkServiceHealth(ctx context.Context, client *http.Client, config *Config) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.BaseURL+"/healthz", http.NoBody)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %d", resp.StatusCode)
	}
	return nil
}

// fetchActivities retrieves the full catalog.
func fetchActivities(ctx context.Context, client *http.Client, config *Config) (map[string]model.Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.BaseURL+"/activities", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build activities request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("activities request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected activities status: %d", resp.StatusCode)
	}

	var activities map[string]model.Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

// rosterMutation performs a signup or remove call and returns the status code.
func rosterMutation(ctx context.Context, client *http.Client, config *Config, method, action, email string) (int, error) {
	u := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		config.BaseURL,
		url.PathEscape(config.Activity),
		action,
		url.QueryEscape(email),
	)
	req, err := http.NewRequestWithContext(ctx, method, u, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", action, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s request: %w", action, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// checkRootRedirect verifies GET / issues a 307 to the landing page.
func checkRootRedirect(ctx context.Context, config *Config) error {
	// Dedicated client so the redirect is observed rather than followed.
	client := &http.Client{
		Timeout: config.Timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.BaseURL+"/", http.NoBody)
	if err != nil {
		return fmt.Errorf("build root request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("root request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusTemporaryRedirect {
		return fmt.Errorf("unexpected root status: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/static/index.html" {
		return fmt.Errorf("unexpected redirect location: %q", loc)
	}
	return nil
}
