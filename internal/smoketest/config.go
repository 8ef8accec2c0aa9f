package smoketest

import "time"

// Config controls a smoke test run against a live service.
type Config struct {
	// BaseURL is the root of the service under test, e.g. http://localhost:8000.
	BaseURL string

	// Activity is the catalog entry exercised by the signup/remove cycle.
	Activity string

	// Students is how many synthetic students to cycle through the roster.
	Students int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Verbose enables per-request logging.
	Verbose bool
}

// Stats accumulates results over a run.
type Stats struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	Signups  int
	Removals int
	Failures int
}
