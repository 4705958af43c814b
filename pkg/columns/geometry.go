package columns

import (
	"time"

	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/observability"
)

// Recalculate re-derives every target's rectangle from the current columns
// and work area.
func (e *Engine) Recalculate() {
	e.calculateWorkspace()
}

func (e *Engine) calculateWorkspace() {
	e.prune()
	if len(e.cols) == 0 {
		return
	}

	total := 0
	for _, col := range e.cols {
		total += len(col.nodes)
	}

	maxCols := e.maxColumns()

	// Few enough windows: one per column, in reading order.
	if total <= maxCols {
		flat := make([]*column, 0, total)
		for _, col := range e.cols {
			for _, nd := range col.nodes {
				flat = append(flat, &column{nodes: []*node{nd}})
			}
		}
		e.cols = flat
	}

	// max_columns was lowered since the columns were built: fold the
	// surplus columns, rightmost first, into their left neighbour.
	for len(e.cols) > maxCols {
		last := len(e.cols) - 1
		e.cols[last-1].nodes = append(e.cols[last-1].nodes, e.cols[last].nodes...)
		e.cols[last] = nil
		e.cols = e.cols[:last]
	}

	space := e.space()
	if space == nil {
		return
	}

	start := time.Now()
	area := space.WorkArea()
	colWidth := area.W / float64(len(e.cols))

	placed := 0
	for c, col := range e.cols {
		rowHeight := area.H / float64(len(col.nodes))
		for n, nd := range col.nodes {
			t := nd.target.Lock()
			if t == nil {
				continue
			}
			t.SetPositionGlobal(geom.Rect{
				X: area.X + float64(c)*colWidth,
				Y: area.Y + float64(n)*rowHeight,
				W: colWidth,
				H: rowHeight,
			})
			placed++
		}
	}

	observability.Layout().OnRecalculate(len(e.cols), placed, time.Since(start))
}

// PredictSizeForNewTarget returns the size the next NewTarget call would
// give its target. The layout is not modified.
func (e *Engine) PredictSizeForNewTarget() (geom.Vec, bool) {
	space := e.space()
	if space == nil {
		return geom.Vec{}, false
	}

	area := space.WorkArea()
	n := min(len(e.cols)+1, e.maxColumns())
	return geom.Vec{X: area.W / float64(n), Y: area.H}, true
}
