// Package sim is an in-memory window manager host for layout algorithms.
//
// It owns windows the way a compositor does: a [Registry] holds the only
// strong references, and algorithms receive weak handles that expire when a
// window is destroyed. A [Workspace] provides the work area and the list of
// windows assigned to it, and [Focus] records focus requests.
//
// [Session] wires these together with an algorithm picked by name from a
// [layout.Registry] and exposes the operations a window manager would
// perform: spawning, closing and killing windows, directional moves, drops
// at a point, and layout messages. Sessions are not safe for concurrent use;
// callers serialize access.
package sim
