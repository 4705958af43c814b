package columns

import (
	"slices"

	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/layout"
)

// MoveTargetInDirection moves t one step.
//
// Left and right move t into the neighbouring column. A target alone in its
// column takes the column with it, swapping places with the neighbour. At
// the outer edge a new column is opened if there is room. Up and down swap
// t with the adjacent node in its column. silent is accepted for interface
// compatibility; focus is never changed here.
func (e *Engine) MoveTargetInDirection(t layout.Target, dir geom.Direction, silent bool) {
	e.prune()
	c, n, ok := e.Locate(t)
	if !ok {
		return
	}

	switch dir {
	case geom.DirectionLeft:
		e.moveAcross(c, n, -1)
	case geom.DirectionRight:
		e.moveAcross(c, n, +1)
	case geom.DirectionUp:
		if n > 0 {
			nodes := e.cols[c].nodes
			nodes[n], nodes[n-1] = nodes[n-1], nodes[n]
		}
	case geom.DirectionDown:
		if nodes := e.cols[c].nodes; n < len(nodes)-1 {
			nodes[n], nodes[n+1] = nodes[n+1], nodes[n]
		}
	}

	e.calculateWorkspace()
}

// moveAcross handles a horizontal move of node n in column c by step (-1 or +1).
func (e *Engine) moveAcross(c, n, step int) {
	edge := 0
	if step > 0 {
		edge = len(e.cols) - 1
	}

	switch {
	case c == edge:
		if len(e.cols) >= e.maxColumns() {
			return
		}
		col := &column{nodes: []*node{e.removeNode(c, n)}}
		if step < 0 {
			e.cols = slices.Insert(e.cols, 0, col)
		} else {
			e.cols = append(e.cols, col)
		}
	case len(e.cols[c].nodes) == 1:
		e.cols[c], e.cols[c+step] = e.cols[c+step], e.cols[c]
	default:
		nd := e.removeNode(c, n)
		e.cols[c+step].nodes = append(e.cols[c+step].nodes, nd)
	}
}

// NextCandidate picks the target to focus once old is gone: the node above
// it, else the one below, else the top of the column to the right, else the
// top of the column to the left. If old is no longer tracked, the first
// other live target wins.
func (e *Engine) NextCandidate(old layout.Target) layout.Target {
	c, n, ok := e.Locate(old)
	if !ok {
		for _, col := range e.cols {
			for _, nd := range col.nodes {
				if t := nd.target.Lock(); t != nil && t != old {
					return t
				}
			}
		}
		return nil
	}

	nodes := e.cols[c].nodes
	if len(nodes) > 1 {
		next := n + 1
		if n > 0 {
			next = n - 1
		}
		return nodes[next].target.Lock()
	}

	if c+1 < len(e.cols) && len(e.cols[c+1].nodes) > 0 {
		return e.cols[c+1].nodes[0].target.Lock()
	}
	if c > 0 && len(e.cols[c-1].nodes) > 0 {
		return e.cols[c-1].nodes[0].target.Lock()
	}
	return nil
}
