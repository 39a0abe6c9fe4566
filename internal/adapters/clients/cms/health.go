package cms

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this client is registered with a
// [ports.HealthRegistry]: the service name of the underlying HTTP client,
// "sanity-cdn" or "sanity-api".
func (c *Client) Name() string {
	return c.req.Name()
}

// HealthCheck reports the query API's availability from the circuit breaker
// state. No network call is made.
//
// A half-open breaker reports degraded and an open breaker reports failing.
// Pages still render their error states while the CMS is down, so callers
// should treat this as downstream status rather than process liveness.
func (c *Client) HealthCheck(_ context.Context) error {
	name := c.Name()
	switch state := c.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", name, state)
	}
}
