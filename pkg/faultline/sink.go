// sink.go defines the Sink interface for delivered notifications.

package faultline

import "context"

// Notification is a serialized event handed to a Sink.
type Notification struct {
	// ID uniquely identifies this delivery (UUID).
	ID string

	// Fingerprint groups notifications for the same failure.
	Fingerprint string

	Payload Payload
}

// Sink is the destination for notifications.
// Implementations must be safe for concurrent use.
type Sink interface {
	// Write delivers a notification.
	Write(ctx context.Context, n Notification) error

	// Flush ensures any buffered notifications are delivered.
	// For synchronous sinks, this may be a no-op.
	Flush(ctx context.Context) error

	// Close releases resources held by the sink.
	Close() error
}

// Discard is a Sink that drops every notification. It is the default sink of
// a Notifier built without WithSink.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Write(context.Context, Notification) error { return nil }

func (discardSink) Flush(context.Context) error { return nil }

func (discardSink) Close() error { return nil }
