// Package messaging defines the broker boundary for checkout side-effect
// tasks.
package messaging

import "context"

// Publisher publishes an event to a topic, keyed for partition ordering.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Subscriber consumes a topic until ctx is cancelled. Handler errors leave
// the message unacknowledged so it is delivered again (at-least-once).
type Subscriber interface {
	Consume(ctx context.Context, handler func(ctx context.Context, payload []byte) error) error
}
