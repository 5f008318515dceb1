// Package delivery holds the transport entry points of the service.
package delivery

import "context"

// Delivery is a long-running transport that serves until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
