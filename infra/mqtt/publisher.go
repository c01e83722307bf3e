package mqtt

import (
	"context"
	"sync"

	coremqtt "github.com/kilianp07/renewables/core/mqtt"
	"github.com/kilianp07/renewables/core/session"
	"github.com/kilianp07/renewables/infra/logger"
	"github.com/kilianp07/renewables/internal/eventbus"
)

// Publisher mirrors the core mqtt.Publisher interface.
type Publisher = coremqtt.Publisher

// StartForwarder publishes every update from bus until ctx is done or the
// bus is closed. Failed publishes are logged and dropped.
func StartForwarder(ctx context.Context, bus *eventbus.Bus[session.Update], pub Publisher, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if log == nil {
		log = logger.NopLogger{}
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-sub:
				if !ok {
					return
				}
				if err := pub.Publish(ctx, u); err != nil {
					log.Errorf("forward update %s: %v", u.ID, err)
				}
			}
		}
	}()
	return done
}

// MockPublisher records updates in memory.
type MockPublisher struct {
	mu      sync.Mutex
	Updates []session.Update
	Err     error
	Closed  bool
}

// Publish records u or returns the configured error.
func (m *MockPublisher) Publish(_ context.Context, u session.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Updates = append(m.Updates, u)
	return nil
}

// Close marks the publisher closed.
func (m *MockPublisher) Close() {
	m.mu.Lock()
	m.Closed = true
	m.mu.Unlock()
}

// Len returns the number of recorded updates.
func (m *MockPublisher) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Updates)
}
