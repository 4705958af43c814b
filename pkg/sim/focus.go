package sim

import "github.com/matzehuels/columns/pkg/layout"

// Focus tracks the focused window. It implements [layout.FocusState].
type Focus struct {
	window   layout.WindowID
	reason   layout.FocusReason
	requests int
}

// Window returns the focused window, or the empty id when nothing has
// focus.
func (f *Focus) Window() layout.WindowID { return f.window }

// FullWindowFocus moves focus to w and records reason. The window is not
// checked for liveness; a focus on a destroyed window simply resolves to
// nothing in [Session.Focused].
func (f *Focus) FullWindowFocus(w layout.WindowID, reason layout.FocusReason) {
	f.window = w
	f.reason = reason
	f.requests++
}

// Reason returns the reason given with the last focus request.
func (f *Focus) Reason() layout.FocusReason { return f.reason }

// Requests counts focus requests since creation.
func (f *Focus) Requests() int { return f.requests }

// Clear drops focus without counting as a request.
func (f *Focus) Clear() { f.window = "" }
