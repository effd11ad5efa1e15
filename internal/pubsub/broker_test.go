package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		require.Fail(t, "timeout waiting for event")
	}
	return Event[T]{}
}

func TestBroker_PublishReachesEverySubscriber(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	first := b.Subscribe(ctx)
	second := b.Subscribe(ctx)
	require.Equal(t, 2, b.SubscriberCount())

	b.Publish(ChangedEvent, "notes.txt")

	for _, ch := range []<-chan Event[string]{first, second} {
		ev := receive(t, ch)
		require.Equal(t, ChangedEvent, ev.Kind)
		require.Equal(t, "notes.txt", ev.Payload)
		require.False(t, ev.At.IsZero())
	}
}

func TestBroker_CancelUnsubscribes(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool { return b.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-ch
	require.False(t, ok)
}

func TestBroker_FullBufferDrops(t *testing.T) {
	b := NewBrokerWithBuffer[int](1)
	defer b.Close()

	ch := b.Subscribe(context.Background())
	b.Publish(ChangedEvent, 1)
	b.Publish(ChangedEvent, 2)

	require.Equal(t, 1, receive(t, ch).Payload)
	select {
	case ev := <-ch:
		require.Failf(t, "unexpected event", "%v", ev)
	default:
	}
}

func TestBroker_Close(t *testing.T) {
	b := NewBroker[int]()
	ch := b.Subscribe(context.Background())

	b.Close()
	b.Close()
	b.Publish(ChangedEvent, 1)

	_, ok := <-ch
	require.False(t, ok)
	_, ok = <-b.Subscribe(context.Background())
	require.False(t, ok, "subscribing to a closed broker yields a closed channel")
}
