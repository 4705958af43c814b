package events

import (
	"context"
	"time"

	"github.com/matzehuels/columns/pkg/render"
)

// Type names the operation that produced an event.
type Type string

const (
	TypeSpawn    Type = "spawn"
	TypeClose    Type = "close"
	TypeFocus    Type = "focus"
	TypeMove     Type = "move"
	TypeSwap     Type = "swap"
	TypeDrop     Type = "drop"
	TypeMessage  Type = "layoutmsg"
	TypeWorkArea Type = "workarea"
	TypeReload   Type = "reload"
)

// Event is a layout change.
type Event struct {
	Type   Type          `json:"type"`
	Window string        `json:"window,omitempty"`
	Detail string        `json:"detail,omitempty"`
	Layout render.Layout `json:"layout"`
	Time   time.Time     `json:"time"`
}

// New returns an event stamped with the current time.
func New(typ Type, window string, l render.Layout) Event {
	return Event{Type: typ, Window: window, Layout: l, Time: time.Now().UTC()}
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}
