package sim

import (
	"slices"

	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/layout"
)

// Workspace is a layout space backed by a [Registry]. It implements both
// [layout.Space] and [layout.Parent].
type Workspace struct {
	reg      *Registry
	area     geom.Rect
	members  []layout.WindowID
	detached bool
}

// NewWorkspace returns an attached workspace with the given work area.
func NewWorkspace(reg *Registry, area geom.Rect) *Workspace {
	return &Workspace{reg: reg, area: area}
}

// WorkArea returns the rectangle available for tiling.
func (ws *Workspace) WorkArea() geom.Rect { return ws.area }

// SetWorkArea replaces the work area. Algorithms pick it up on their next
// recalculation; callers that want windows moved now must recalculate.
func (ws *Workspace) SetWorkArea(area geom.Rect) { ws.area = area }

// Targets returns weak handles to the assigned windows, destroyed ones
// included.
func (ws *Workspace) Targets() []layout.WeakTarget {
	out := make([]layout.WeakTarget, 0, len(ws.members))
	for _, id := range ws.members {
		out = append(out, weakRef{reg: ws.reg, id: id})
	}
	return out
}

// Space returns the workspace, or nil while detached.
func (ws *Workspace) Space() layout.Space {
	if ws.detached {
		return nil
	}
	return ws
}

// Detach removes the layout context: algorithms see no space.
func (ws *Workspace) Detach() { ws.detached = true }

// Attach restores the layout context after [Workspace.Detach].
func (ws *Workspace) Attach() { ws.detached = false }

// Detached reports whether [Workspace.Detach] is in effect.
func (ws *Workspace) Detached() bool { return ws.detached }

func (ws *Workspace) add(id layout.WindowID) {
	if !slices.Contains(ws.members, id) {
		ws.members = append(ws.members, id)
	}
}

func (ws *Workspace) remove(id layout.WindowID) {
	ws.members = slices.DeleteFunc(ws.members, func(m layout.WindowID) bool { return m == id })
}
