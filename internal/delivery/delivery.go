// Package delivery defines the contract every transport front end
// (HTTP server, worker, etc.) satisfies so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running request front end. Serve blocks until the
// delivery stops or fails; shutdown happens through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
