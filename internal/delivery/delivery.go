// Package delivery defines the contract every transport implementation
// (HTTP today, others later) must satisfy to be started by the application.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the server
// stops; shutdown is driven by the application lifecycle, not by the caller.
type Delivery interface {
	Serve(ctx context.Context) error
}
