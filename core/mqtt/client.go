package mqtt

import (
	"context"

	"github.com/kilianp07/renewables/core/session"
)

// Publisher delivers timeline updates to a broker.
type Publisher interface {
	// Publish sends the update and returns once the broker accepted it or
	// every retry failed.
	Publish(ctx context.Context, u session.Update) error

	// Close disconnects from the broker.
	Close()
}
