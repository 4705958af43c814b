// Package script runs scenario files against a simulated session.
//
// A script has one step per line. Blank lines are ignored and "#" starts a
// comment. Windows are referred to by the name they were spawned with.
//
//	workarea 0 0 1920 1080
//	set plugin:columns:max_columns 3
//	spawn term
//	spawn editor
//	move editor left
//	layoutmsg swapcolumn +1
//	expect-columns 1 1
//
// Commands:
//
//	workarea X Y W H        set the work area
//	set KEY VALUE           change a config value (integer or string)
//	spawn NAME              open a window and focus it
//	close NAME              close a window through the algorithm
//	kill NAME               destroy a window behind the algorithm's back
//	focus NAME              focus a window
//	move NAME DIR           move one step; DIR is left|right|up|down or l|r|u|d
//	swap A B                exchange two windows
//	drop NAME X Y           re-insert a window at a point
//	resize NAME DX DY       forward an interactive resize
//	layoutmsg TEXT...       send a layout message
//	detach / attach         remove or restore the layout context
//	recalc                  recompute geometry
//	predict                 record the predicted size of a new window
//	expect-columns N...     assert the window count of each column
//	expect-focus NAME       assert the focused window
//
// [Run] stops at the first failing step, except that layout message errors
// are recorded in the step's [Result] and execution continues.
package script
