// Package delivery holds the transports that expose the address book.
package delivery

import "context"

// Delivery is a long-running transport started by the binary.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
