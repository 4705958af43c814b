package sim

import (
	"testing"

	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/layout"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	a := reg.Create("a")
	b := reg.Create("b")

	if a.ID() == b.ID() || a.ID() == "" {
		t.Fatalf("ids not unique: %q %q", a.ID(), b.ID())
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}

	weak := a.Weak()
	if weak.Expired() {
		t.Error("live window reported expired")
	}
	if weak.Lock() != a {
		t.Error("Lock() should return the window")
	}

	if !reg.Destroy(a.Window()) {
		t.Error("Destroy() = false for live window")
	}
	if reg.Destroy(a.Window()) {
		t.Error("Destroy() = true for destroyed window")
	}
	if !weak.Expired() || weak.Lock() != nil {
		t.Error("weak handle survived Destroy()")
	}
	if ws := reg.Windows(); len(ws) != 1 || ws[0] != b {
		t.Errorf("Windows() = %v, want [b]", ws)
	}
}

func TestWindowPlacement(t *testing.T) {
	w := NewRegistry().Create("w")
	box := geom.Rect{X: 1, Y: 2, W: 3, H: 4}
	w.SetPositionGlobal(box)
	w.SetPositionGlobal(box)
	if w.Rect() != box || w.Placements() != 2 {
		t.Errorf("Rect() = %v, Placements() = %d", w.Rect(), w.Placements())
	}
}

func TestWorkspace(t *testing.T) {
	reg := NewRegistry()
	ws := NewWorkspace(reg, geom.Rect{W: 100, H: 100})
	a := reg.Create("a")
	ws.add(a.Window())
	ws.add(a.Window())

	if n := len(ws.Targets()); n != 1 {
		t.Errorf("Targets() = %d handles, want 1", n)
	}

	reg.Destroy(a.Window())
	targets := ws.Targets()
	if len(targets) != 1 || !targets[0].Expired() {
		t.Error("destroyed member should be listed as an expired handle")
	}

	ws.Detach()
	if ws.Space() != nil {
		t.Error("Space() should be nil while detached")
	}
	ws.Attach()
	if ws.Space() == nil {
		t.Error("Space() should be restored after Attach()")
	}
}

func TestWindowAccessors(t *testing.T) {
	reg := NewRegistry()
	w := reg.Create("term")

	if string(w.Window()) != w.ID() {
		t.Errorf("Window() = %q, want ID() %q", w.Window(), w.ID())
	}
	if w.Title() != "term" {
		t.Errorf("Title() = %q, want term", w.Title())
	}
	if !w.Rect().Empty() {
		t.Errorf("Rect() = %v before placement, want zero", w.Rect())
	}
}

func TestFocusState(t *testing.T) {
	var f Focus
	if f.Window() != "" {
		t.Errorf("Window() = %q on new focus, want empty", f.Window())
	}

	f.FullWindowFocus("gone", layout.FocusReasonClick)
	if f.Window() != "gone" || f.Reason() != layout.FocusReasonClick || f.Requests() != 1 {
		t.Errorf("after focus: window=%q reason=%v requests=%d", f.Window(), f.Reason(), f.Requests())
	}

	f.Clear()
	if f.Window() != "" || f.Requests() != 1 {
		t.Errorf("after Clear: window=%q requests=%d", f.Window(), f.Requests())
	}
}
