package script

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/geom"
)

func TestParse(t *testing.T) {
	steps, err := ParseString(`
# a comment
workarea 10 20 300 200
spawn T1   # trailing comment
move T1 l
swap T1 T2
drop T1 150.5 10
layoutmsg focuscolumn +1
layoutmsg focuscolumn
set plugin:columns:max_columns 4
set plugin:columns:spawn_direction left
expect-columns 1 2
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var ops []Op
	for _, s := range steps {
		ops = append(ops, s.Op)
	}
	want := []Op{OpWorkArea, OpSpawn, OpMove, OpSwap, OpDrop, OpLayoutMsg, OpLayoutMsg, OpSet, OpSet, OpExpectColumns}
	if !slices.Equal(ops, want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}

	if steps[0].Line != 3 || steps[0].Rect != (geom.Rect{X: 10, Y: 20, W: 300, H: 200}) {
		t.Errorf("workarea step = %+v", steps[0])
	}
	if steps[1].Name != "T1" {
		t.Errorf("spawn name = %q, want T1", steps[1].Name)
	}
	if steps[2].Dir != geom.DirectionLeft {
		t.Errorf("move dir = %v, want left", steps[2].Dir)
	}
	if steps[3].Name != "T1" || steps[3].Other != "T2" {
		t.Errorf("swap = %q %q", steps[3].Name, steps[3].Other)
	}
	if steps[4].Vec != (geom.Vec{X: 150.5, Y: 10}) {
		t.Errorf("drop point = %v", steps[4].Vec)
	}
	if steps[5].Text != "focuscolumn +1" || steps[6].Text != "focuscolumn" {
		t.Errorf("layoutmsg texts = %q, %q", steps[5].Text, steps[6].Text)
	}
	if steps[7].Value != int64(4) || steps[8].Value != "left" {
		t.Errorf("set values = %#v, %#v", steps[7].Value, steps[8].Value)
	}
	if !slices.Equal(steps[9].Counts, []int{1, 2}) {
		t.Errorf("counts = %v, want [1 2]", steps[9].Counts)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantMsg string
	}{
		{"unknown command", "spawn a\nteleport a", "line 2: unknown command"},
		{"missing arg", "spawn", "line 1: spawn takes 1 argument(s), got 0"},
		{"extra arg", "recalc now", "line 1: recalc takes 0 argument(s), got 1"},
		{"bad number", "drop a x 1", `line 1: invalid number "x"`},
		{"bad direction", "move a sideways", `line 1: unknown direction "sideways"`},
		{"empty work area", "workarea 0 0 0 100", "line 1: work area must have positive size"},
		{"bad count", "expect-columns 1 zero", `line 1: invalid column count "zero"`},
		{"empty layoutmsg", "\n\nlayoutmsg", "line 3: layoutmsg takes at least 1 argument(s), got 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.script)
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
			if msg := errors.UserMessage(err); !strings.HasPrefix(msg, tt.wantMsg) {
				t.Errorf("message = %q, want prefix %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	steps, err := ParseString("\n# only comments\n\n")
	if err != nil || len(steps) != 0 {
		t.Errorf("Parse() = %v, %v, want no steps", steps, err)
	}
}
