package runtime

import "time"

// Service is one independently-scheduled unit of work run on the services
// thread. Implementations must never block for long inside Tick; Start and
// Quit bound setup and teardown respectively. A returned error is logged
// against the service's Name and otherwise swallowed - no service's error
// may stop the services loop or another service from ticking.
type Service interface {
	// Name identifies the service in logs when its Tick errors or panics.
	Name() string
	// Start runs once before the services loop begins ticking.
	Start() error
	// Tick runs the service's periodic work for the current instant.
	Tick(now time.Time) error
	// Quit runs once as the services loop is shutting down. Implementations
	// that need to finish in-flight work (the autosave service) block here.
	Quit()
}
