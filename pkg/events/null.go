package events

import "context"

// NullPublisher discards every event.
type NullPublisher struct{}

// NewNullPublisher returns a publisher that does nothing.
func NewNullPublisher() Publisher {
	return &NullPublisher{}
}

func (p *NullPublisher) Publish(context.Context, Event) error { return nil }
func (p *NullPublisher) Close() error                         { return nil }
