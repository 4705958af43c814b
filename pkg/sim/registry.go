package sim

import (
	"github.com/google/uuid"

	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/layout"
)

// Window is a simulated client window. It implements [layout.Target].
type Window struct {
	id         layout.WindowID
	title      string
	rect       geom.Rect
	placements int
	reg        *Registry
}

// Window returns the identity the layout uses for focus requests. It is
// the same value as [Window.ID], typed for the layout package.
func (w *Window) Window() layout.WindowID { return w.id }

// SetPositionGlobal records the rectangle assigned by the layout.
func (w *Window) SetPositionGlobal(box geom.Rect) {
	w.rect = box
	w.placements++
}

// Weak returns a handle that expires once the window is destroyed.
func (w *Window) Weak() layout.WeakTarget { return weakRef{reg: w.reg, id: w.id} }

// ID returns the window's uuid. It never changes and is never reused.
func (w *Window) ID() string { return string(w.id) }

// Title returns the title the window was spawned with. Titles need not be
// unique; [Session.Lookup] resolves them to the oldest matching window.
func (w *Window) Title() string { return w.title }

// Rect returns the last rectangle assigned by the layout, or the zero
// rectangle if the window has not been placed yet.
func (w *Window) Rect() geom.Rect { return w.rect }

// Placements counts how many rectangles the layout has assigned.
func (w *Window) Placements() int { return w.placements }

// weakRef is a non-owning handle resolved through the registry on every
// access, so a destroyed window expires without the layout being told.
type weakRef struct {
	reg *Registry
	id  layout.WindowID
}

// Expired reports whether the window has been destroyed.
func (r weakRef) Expired() bool {
	_, ok := r.reg.windows[r.id]
	return !ok
}

// Lock returns the live window, or a nil interface once it is gone.
func (r weakRef) Lock() layout.Target {
	w, ok := r.reg.windows[r.id]
	if !ok {
		return nil
	}
	return w
}

// Registry owns every live window.
type Registry struct {
	windows map[layout.WindowID]*Window
	order   []layout.WindowID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[layout.WindowID]*Window)}
}

// Create allocates a window with a fresh id.
func (r *Registry) Create(title string) *Window {
	w := &Window{
		id:    layout.WindowID(uuid.NewString()),
		title: title,
		reg:   r,
	}
	r.windows[w.id] = w
	r.order = append(r.order, w.id)
	return w
}

// Get returns the live window with id.
func (r *Registry) Get(id layout.WindowID) (*Window, bool) {
	w, ok := r.windows[id]
	return w, ok
}

// Destroy drops the registry's reference. Weak handles to the window
// expire immediately. It reports whether the window was live.
func (r *Registry) Destroy(id layout.WindowID) bool {
	if _, ok := r.windows[id]; !ok {
		return false
	}
	delete(r.windows, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Windows returns the live windows in creation order.
func (r *Registry) Windows() []*Window {
	out := make([]*Window, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.windows[id])
	}
	return out
}

// Len returns the number of live windows.
func (r *Registry) Len() int { return len(r.windows) }
