// Package delivery defines the long-running entry points started by the process.
package delivery

import "context"

// Delivery is a server started in its own goroutine and stopped through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
