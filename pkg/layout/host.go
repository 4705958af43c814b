package layout

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/columns/pkg/geom"
)

// WindowID identifies a window for focus requests. The empty id means
// "no window".
type WindowID string

// FocusReason tags a focus transfer with what caused it.
type FocusReason int

const (
	FocusReasonOther FocusReason = iota
	FocusReasonKeybind
	FocusReasonNewWindow
	FocusReasonWindowClosed
	FocusReasonClick
)

func (r FocusReason) String() string {
	switch r {
	case FocusReasonKeybind:
		return "keybind"
	case FocusReasonNewWindow:
		return "new-window"
	case FocusReasonWindowClosed:
		return "window-closed"
	case FocusReasonClick:
		return "click"
	}
	return "other"
}

// Corner names the corner a resize is anchored to.
type Corner int

const (
	CornerNone Corner = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// Target is a window placed by a layout algorithm.
type Target interface {
	// Window returns the window identity used for focus requests.
	Window() WindowID
	// SetPositionGlobal assigns the target's rectangle in global coordinates.
	SetPositionGlobal(box geom.Rect)
	// Weak returns a non-owning handle to this target.
	Weak() WeakTarget
}

// WeakTarget is a non-owning reference to a Target.
type WeakTarget interface {
	// Expired reports whether the host has destroyed the target.
	Expired() bool
	// Lock resolves the handle. It returns nil once the target has expired.
	Lock() Target
}

// Space is the area a workspace lays targets out in.
type Space interface {
	WorkArea() geom.Rect
	// Targets enumerates every target assigned to the space, including ones
	// the current algorithm has not been told about.
	Targets() []WeakTarget
}

// Parent owns an algorithm instance. Space returns nil when the parent is
// not attached to a workspace.
type Parent interface {
	Space() Space
}

// FocusState is the host's focus tracker.
type FocusState interface {
	// Window returns the focused window, or "" when nothing is focused.
	Window() WindowID
	// FullWindowFocus moves focus to w.
	FullWindowFocus(w WindowID, reason FocusReason)
}

// ConfigSource is read-only keyed configuration. Missing keys yield the zero
// value and false.
type ConfigSource interface {
	Int(key string) (int64, bool)
	String(key string) (string, bool)
}

// Host bundles the capabilities handed to an algorithm at construction.
// Any field may be nil; algorithms must treat a nil capability as absent and
// degrade to a no-op.
type Host struct {
	Parent Parent
	Focus  FocusState
	Config ConfigSource
	Logger *log.Logger
}

// TiledAlgorithm is the policy engine a host delegates tiling to.
type TiledAlgorithm interface {
	// NewTarget places a target that has just appeared.
	NewTarget(t Target)
	// MovedTarget places a target that was dropped or moved in. focal, if
	// non-nil, is the screen position the target was released at.
	MovedTarget(t Target, focal *geom.Vec)
	// RemoveTarget forgets a target.
	RemoveTarget(t Target)
	// ResizeTarget handles an interactive resize by delta anchored at corner.
	ResizeTarget(delta geom.Vec, t Target, corner Corner)
	// Recalculate re-derives geometry for every target.
	Recalculate()
	// SwapTargets exchanges the positions of two targets.
	SwapTargets(a, b Target)
	// MoveTargetInDirection moves a target one step in dir.
	MoveTargetInDirection(t Target, dir geom.Direction, silent bool)
	// NextCandidate picks the target to focus after old goes away. It
	// returns nil when there is none.
	NextCandidate(old Target) Target
	// LayoutMsg executes a text command.
	LayoutMsg(msg string) error
	// PredictSizeForNewTarget returns the size the next inserted target
	// would receive. ok is false when no work area is available.
	PredictSizeForNewTarget() (size geom.Vec, ok bool)
}
