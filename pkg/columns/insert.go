package columns

import (
	"slices"

	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/layout"
)

// NewTarget adds t as a new column while there is room, otherwise to the
// least populated column.
func (e *Engine) NewTarget(t layout.Target) {
	if t == nil {
		return
	}
	e.prune()
	if _, _, ok := e.Locate(t); ok {
		e.calculateWorkspace()
		return
	}

	nd := newNode(t)
	right := e.spawnRight()

	if len(e.cols) < e.maxColumns() {
		col := &column{nodes: []*node{nd}}
		if right {
			e.cols = append(e.cols, col)
		} else {
			e.cols = slices.Insert(e.cols, 0, col)
		}
		e.logger.Debug("new target", "column", "new", "columns", len(e.cols))
	} else {
		least := e.leastPopulated(right)
		e.cols[least].nodes = append(e.cols[least].nodes, nd)
		e.logger.Debug("new target", "column", least, "nodes", len(e.cols[least].nodes))
	}

	e.calculateWorkspace()
}

// leastPopulated returns the index of the column with the fewest nodes.
// Ties go to the spawn side: the last column when spawning right, the first
// otherwise.
func (e *Engine) leastPopulated(right bool) int {
	least := 0
	if right {
		least = len(e.cols) - 1
	}
	for c, col := range e.cols {
		if len(col.nodes) < len(e.cols[least].nodes) {
			least = c
		}
	}
	return least
}

// MovedTarget places t in the column under focal. Without a focal point,
// or with no columns yet, it behaves like NewTarget.
//
// The target is appended to that column before the geometry pass, so a
// layout with few windows is flattened again right away.
func (e *Engine) MovedTarget(t layout.Target, focal *geom.Vec) {
	if t == nil {
		return
	}
	if c, n, ok := e.Locate(t); ok {
		e.removeNode(c, n)
		e.prune()
	}

	if focal != nil && len(e.cols) > 0 {
		if space := e.space(); space != nil {
			area := space.WorkArea()
			if area.W > 0 {
				numCols := len(e.cols)
				colWidth := area.W / float64(numCols)
				c := min(max(int((focal.X-area.X)/colWidth), 0), numCols-1)

				e.cols[c].nodes = append(e.cols[c].nodes, newNode(t))
				e.logger.Debug("moved target", "focal", focal, "column", c)
				e.calculateWorkspace()
				return
			}
		}
	}

	e.NewTarget(t)
}

// RemoveTarget drops t. Unknown targets are ignored.
func (e *Engine) RemoveTarget(t layout.Target) {
	c, n, ok := e.Locate(t)
	if !ok {
		return
	}

	e.removeNode(c, n)
	e.calculateWorkspace()
}

// ResizeTarget does nothing: columns always have equal widths and rows
// equal heights.
func (e *Engine) ResizeTarget(geom.Vec, layout.Target, layout.Corner) {}

// SwapTargets exchanges the targets of two nodes. The nodes stay where they
// are.
func (e *Engine) SwapTargets(a, b layout.Target) {
	ca, na, okA := e.Locate(a)
	cb, nb, okB := e.Locate(b)
	if !okA || !okB {
		return
	}

	x, y := e.cols[ca].nodes[na], e.cols[cb].nodes[nb]
	x.target, y.target = y.target, x.target
	e.calculateWorkspace()
}
