package columns

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/columns/pkg/layout"
)

// Name is the name the algorithm registers under.
const Name = "columns"

// Config keys and their defaults. The namespace follows the algorithm name,
// so the keys live under [plugin.columns] in the config file.
const (
	KeyMaxColumns     = "plugin:columns:max_columns"
	KeySpawnDirection = "plugin:columns:spawn_direction"

	DefaultMaxColumns     = 3
	DefaultSpawnDirection = "right"
)

type node struct {
	target layout.WeakTarget
}

func newNode(t layout.Target) *node {
	return &node{target: t.Weak()}
}

type column struct {
	nodes []*node
}

// Engine is the column layout algorithm for one workspace.
// It is not safe for concurrent use.
type Engine struct {
	host   layout.Host
	logger *log.Logger
	cols   []*column
}

// New creates an engine bound to host.
func New(host layout.Host) *Engine {
	logger := host.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{host: host, logger: logger.WithPrefix(Name)}
}

// Locate returns the column and node index of t.
func (e *Engine) Locate(t layout.Target) (col, idx int, ok bool) {
	if t == nil {
		return -1, -1, false
	}
	for c, column := range e.cols {
		for n, nd := range column.nodes {
			if nd.target.Lock() == t {
				return c, n, true
			}
		}
	}
	return -1, -1, false
}

// Columns returns the live targets of each column, left to right.
func (e *Engine) Columns() [][]layout.Target {
	out := make([][]layout.Target, 0, len(e.cols))
	for _, col := range e.cols {
		var targets []layout.Target
		for _, nd := range col.nodes {
			if t := nd.target.Lock(); t != nil {
				targets = append(targets, t)
			}
		}
		if len(targets) > 0 {
			out = append(out, targets)
		}
	}
	return out
}

// prune drops expired nodes, then columns left without nodes.
func (e *Engine) prune() {
	kept := e.cols[:0]
	for _, col := range e.cols {
		nodes := col.nodes[:0]
		for _, nd := range col.nodes {
			if !nd.target.Expired() {
				nodes = append(nodes, nd)
			}
		}
		clear(col.nodes[len(nodes):])
		col.nodes = nodes
		if len(col.nodes) > 0 {
			kept = append(kept, col)
		}
	}
	clear(e.cols[len(kept):])
	e.cols = kept
}

func (e *Engine) removeNode(c, n int) *node {
	col := e.cols[c]
	nd := col.nodes[n]
	col.nodes = append(col.nodes[:n], col.nodes[n+1:]...)
	return nd
}

func (e *Engine) space() layout.Space {
	if e.host.Parent == nil {
		return nil
	}
	return e.host.Parent.Space()
}

func (e *Engine) maxColumns() int {
	n := int64(DefaultMaxColumns)
	if e.host.Config != nil {
		if v, ok := e.host.Config.Int(KeyMaxColumns); ok {
			n = v
		}
	}
	return int(max(1, n))
}

func (e *Engine) spawnRight() bool {
	dir := DefaultSpawnDirection
	if e.host.Config != nil {
		if v, ok := e.host.Config.String(KeySpawnDirection); ok {
			dir = v
		}
	}
	return dir != "left"
}

var _ layout.TiledAlgorithm = (*Engine)(nil)
