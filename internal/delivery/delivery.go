// Package delivery contains the entry points that expose the ordering client to its callers.
package delivery

import "context"

// Delivery is a long-running front end, started once the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
