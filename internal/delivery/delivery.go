// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, worker, ...) started by the bootstrap.
type Delivery interface {
	Serve(ctx context.Context) error
}
