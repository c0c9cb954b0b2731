// Package delivery defines the contract every transport implementation
// (HTTP, worker, ...) satisfies so main can serve them uniformly.
package delivery

import "context"

// Delivery is a serving surface started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
