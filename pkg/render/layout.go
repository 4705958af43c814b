package render

import "github.com/matzehuels/columns/pkg/geom"

// Layout is a snapshot of one workspace.
type Layout struct {
	WorkArea geom.Rect `json:"work_area"`
	Focused  string    `json:"focused,omitempty"`
	Columns  []Column  `json:"columns"`
}

// Column lists its windows top to bottom.
type Column struct {
	Windows []Window `json:"windows"`
}

// Window is a tiled window and its assigned rectangle.
type Window struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Rect  geom.Rect `json:"rect"`
}

// Counts returns the number of windows per column.
func (l Layout) Counts() []int {
	out := make([]int, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = len(c.Windows)
	}
	return out
}

// Windows returns every window in column order.
func (l Layout) Windows() []Window {
	var out []Window
	for _, c := range l.Columns {
		out = append(out, c.Windows...)
	}
	return out
}

// Find returns the window with the given id and its column.
func (l Layout) Find(id string) (Window, int, bool) {
	for i, c := range l.Columns {
		for _, w := range c.Windows {
			if w.ID == id {
				return w, i, true
			}
		}
	}
	return Window{}, -1, false
}
