package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListener_ReturnsEventAsMsg(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := NewListener[string](ctx, b)

	b.Publish(RemovedEvent, "gone.txt")
	msg := l.Listen()()

	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, RemovedEvent, ev.Kind)
	require.Equal(t, "gone.txt", ev.Payload)
}

func TestListenCmd_ClosedChannel(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	require.Nil(t, ListenCmd(context.Background(), ch)())
}

func TestListenCmd_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Nil(t, ListenCmd(ctx, make(chan Event[string]))())
}
