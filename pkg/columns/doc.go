// Package columns implements an equal-width column tiling algorithm.
//
// The work area is split into up to max_columns columns of equal width.
// Each column stacks its windows top to bottom at equal height. While the
// number of windows is at most max_columns every window gets a column of its
// own; beyond that, new windows join the least populated column.
//
// # State
//
// The engine's whole state is an ordered list of columns, each an ordered
// list of nodes. A node holds a [layout.WeakTarget]; windows are owned by
// the host and may disappear at any time. Expired nodes are dropped lazily
// by a prune pass that runs before every geometry pass, and a column left
// without nodes is dropped with them.
//
// # Geometry
//
// Every mutating call ends with a geometry pass that:
//
//  1. prunes expired nodes and empty columns,
//  2. flattens the layout to one node per column if the node count is at
//     most max_columns,
//  3. assigns each target x = area.X + c*colWidth, y = area.Y + n*rowHeight.
//
// Resize requests are ignored so that column widths stay equal.
//
// # Layout messages
//
// [Engine.LayoutMsg] accepts "<command> <offset>" where offset is +1, 1 or
// -1, relative to the column of the focused window:
//
//	focuscolumn +1    focus the first window of the next column
//	movetocolumn -1   move the focused window to the previous column
//	swapcolumn +1     exchange the focused column with the next one
//
// Offsets that point outside the layout are silently ignored.
//
// # Configuration
//
//	plugin:columns:max_columns      int, default 3, minimum 1
//	plugin:columns:spawn_direction  "left" or "right", default "right"
//
// Both values are re-read on every call.
package columns
