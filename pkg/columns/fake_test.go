package columns

import (
	"slices"
	"testing"

	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/layout"
)

type fakeTarget struct {
	id     string
	box    geom.Rect
	placed int
	dead   bool
}

func (t *fakeTarget) Window() layout.WindowID         { return layout.WindowID(t.id) }
func (t *fakeTarget) SetPositionGlobal(box geom.Rect) { t.box = box; t.placed++ }
func (t *fakeTarget) Weak() layout.WeakTarget         { return fakeWeak{t} }

type fakeWeak struct{ t *fakeTarget }

func (w fakeWeak) Expired() bool { return w.t.dead }

func (w fakeWeak) Lock() layout.Target {
	if w.t.dead {
		return nil
	}
	return w.t
}

type fakeSpace struct {
	area    geom.Rect
	targets []*fakeTarget
}

func (s *fakeSpace) WorkArea() geom.Rect { return s.area }

func (s *fakeSpace) Targets() []layout.WeakTarget {
	out := make([]layout.WeakTarget, 0, len(s.targets))
	for _, t := range s.targets {
		out = append(out, t.Weak())
	}
	return out
}

type fakeParent struct{ space *fakeSpace }

func (p *fakeParent) Space() layout.Space {
	if p.space == nil {
		return nil
	}
	return p.space
}

type fakeFocus struct {
	window layout.WindowID
	reason layout.FocusReason
	calls  int
}

func (f *fakeFocus) Window() layout.WindowID { return f.window }

func (f *fakeFocus) FullWindowFocus(w layout.WindowID, reason layout.FocusReason) {
	f.window = w
	f.reason = reason
	f.calls++
}

type fakeConfig map[string]any

func (c fakeConfig) Int(key string) (int64, bool) {
	v, ok := c[key].(int64)
	return v, ok
}

func (c fakeConfig) String(key string) (string, bool) {
	v, ok := c[key].(string)
	return v, ok
}

func (c fakeConfig) AddValue(key string, def any) error {
	if _, ok := c[key]; !ok {
		c[key] = def
	}
	return nil
}

// harness wires an engine to fake host capabilities with a 300x200 work area.
type harness struct {
	t       *testing.T
	eng     *Engine
	parent  *fakeParent
	space   *fakeSpace
	focus   *fakeFocus
	cfg     fakeConfig
	targets map[string]*fakeTarget
}

func newHarness(t *testing.T, maxCols int64, spawn string) *harness {
	t.Helper()
	space := &fakeSpace{area: geom.Rect{W: 300, H: 200}}
	h := &harness{
		t:       t,
		parent:  &fakeParent{space: space},
		space:   space,
		focus:   &fakeFocus{},
		cfg:     fakeConfig{KeyMaxColumns: maxCols, KeySpawnDirection: spawn},
		targets: make(map[string]*fakeTarget),
	}
	h.eng = New(layout.Host{Parent: h.parent, Focus: h.focus, Config: h.cfg})
	return h
}

// target returns the fake for id, creating and assigning it to the space on
// first use.
func (h *harness) target(id string) *fakeTarget {
	if t, ok := h.targets[id]; ok {
		return t
	}
	t := &fakeTarget{id: id}
	h.targets[id] = t
	h.space.targets = append(h.space.targets, t)
	return t
}

func (h *harness) spawn(ids ...string) {
	for _, id := range ids {
		h.eng.NewTarget(h.target(id))
	}
}

// layout returns the window ids per column.
func (h *harness) layout() [][]string {
	var out [][]string
	for _, col := range h.eng.Columns() {
		var ids []string
		for _, t := range col {
			ids = append(ids, string(t.Window()))
		}
		out = append(out, ids)
	}
	return out
}

func (h *harness) counts() []int {
	var out []int
	for _, col := range h.eng.Columns() {
		out = append(out, len(col))
	}
	return out
}

func (h *harness) wantLayout(want ...[]string) {
	h.t.Helper()
	got := h.layout()
	if !slices.EqualFunc(got, want, slices.Equal[[]string]) {
		h.t.Errorf("layout = %v, want %v", got, want)
	}
}

func (h *harness) wantBox(id string, want geom.Rect) {
	h.t.Helper()
	if got := h.targets[id].box; !approxRect(got, want) {
		h.t.Errorf("box(%s) = %v, want %v", id, got, want)
	}
}

func (h *harness) boxes() map[string]geom.Rect {
	out := make(map[string]geom.Rect, len(h.targets))
	for id, t := range h.targets {
		out[id] = t.box
	}
	return out
}

const tolerance = 1e-9

func approx(a, b float64) bool {
	d := a - b
	return d < tolerance && d > -tolerance
}

func approxRect(a, b geom.Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.W, b.W) && approx(a.H, b.H)
}

// geom300x200Row is the box of row n of rows in a single full-width column.
func geom300x200Row(n, rows int) geom.Rect {
	h := 200 / float64(rows)
	return geom.Rect{X: 0, Y: float64(n) * h, W: 300, H: h}
}

// geom300x200Col is the box of a lone target in column c of cols.
func geom300x200Col(c, cols int) geom.Rect {
	w := 300 / float64(cols)
	return geom.Rect{X: float64(c) * w, Y: 0, W: w, H: 200}
}
