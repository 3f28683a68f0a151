// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a long-running transport serving the application. Serve blocks
// until the transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
