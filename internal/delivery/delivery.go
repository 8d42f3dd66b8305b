// Package delivery defines the transports that expose the usecases.
package delivery

import "context"

// Delivery is a transport that serves until it is stopped by its fx hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
