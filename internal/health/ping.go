package health

import "context"

// HealthPinger is satisfied by components exposing a liveness probe.
// Ping must return nil when the component is healthy.
type HealthPinger interface {
	Ping(ctx context.Context) error
}
