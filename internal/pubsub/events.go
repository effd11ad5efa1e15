// Package pubsub fans events out from background producers (file watcher,
// logger) to the bubbletea update loop.
package pubsub

import (
	"context"
	"time"
)

// Kind names what happened.
type Kind string

const (
	// ChangedEvent reports content that changed outside the editor.
	ChangedEvent Kind = "changed"
	// RemovedEvent reports a file that was removed or renamed away.
	RemovedEvent Kind = "removed"
	// LoggedEvent carries a formatted log entry.
	LoggedEvent Kind = "logged"
)

// Event is one published occurrence with a typed payload.
type Event[T any] struct {
	Kind    Kind
	Payload T
	At      time.Time
}

// Publisher publishes events with a typed payload.
type Publisher[T any] interface {
	Publish(kind Kind, payload T)
}

// Subscriber hands out event channels that close with their context.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}
