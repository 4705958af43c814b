package events

import (
	"context"

	"github.com/charmbracelet/log"
)

// LogPublisher logs one line per event.
type LogPublisher struct {
	logger *log.Logger
}

// NewLogPublisher returns a publisher writing to logger.
func NewLogPublisher(logger *log.Logger) *LogPublisher {
	if logger == nil {
		logger = log.Default()
	}
	return &LogPublisher{logger: logger.WithPrefix("events")}
}

func (p *LogPublisher) Publish(_ context.Context, ev Event) error {
	p.logger.Info(string(ev.Type),
		"window", ev.Window,
		"detail", ev.Detail,
		"columns", ev.Layout.Counts(),
		"focused", ev.Layout.Focused)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// Fanout publishes to every publisher in order. Errors are joined.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}

func (f Fanout) Close() error {
	var errs []error
	for _, p := range f {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}
