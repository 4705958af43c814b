// Package layout defines the contract between a window manager (the host)
// and the tiling algorithms it delegates placement decisions to.
//
// # Host capabilities
//
// Algorithms never own windows. They see them through narrow interfaces:
//
//   - [Target]: a placed window. Accepts a rectangle, reports its window id.
//   - [WeakTarget]: a non-owning handle. Algorithms store these and must
//     check [WeakTarget.Expired] or resolve with [WeakTarget.Lock] before
//     every use, because the host may destroy a window at any time.
//   - [Space]: the work area and the targets currently assigned to it.
//   - [Parent]: the algorithm's owner, which may or may not have a [Space].
//   - [FocusState]: the focused window and a way to move focus.
//   - [ConfigSource]: keyed configuration, re-read on every call so a reload
//     takes effect on the next operation.
//
// Targets are compared by interface equality, so implementations must be
// comparable; pointer types are the natural choice.
//
// # Algorithms
//
// A [TiledAlgorithm] receives every structural event for one workspace. All
// calls happen on the host's single control thread; implementations need no
// locking. Algorithms are created by name through a [Registry]:
//
//	reg := layout.NewRegistry()
//	columns.Register(reg, store)
//	algo, err := reg.New("columns", layout.Host{Parent: ws, Focus: focus, Config: store})
package layout
