package mqtt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/renewables/core/session"
	"github.com/kilianp07/renewables/internal/eventbus"
)

func TestStartForwarderPublishesUpdates(t *testing.T) {
	bus := eventbus.NewBuffered[session.Update](4)
	pub := &MockPublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	done := StartForwarder(ctx, bus, pub, nil)

	bus.Publish(session.Update{ID: "a"})
	bus.Publish(session.Update{ID: "b"})
	require.Eventually(t, func() bool { return pub.Len() == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "a", pub.Updates[0].ID)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forwarder did not stop")
	}
	assert.Equal(t, 0, bus.Subscribers())
}

func TestStartForwarderSurvivesErrors(t *testing.T) {
	bus := eventbus.New[session.Update]()
	pub := &MockPublisher{Err: errors.New("offline")}
	done := StartForwarder(context.Background(), bus, pub, nil)

	bus.Publish(session.Update{ID: "a"})
	bus.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forwarder did not stop")
	}
	assert.Zero(t, pub.Len())
}
