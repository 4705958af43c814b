package sim

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/columns/pkg/columns"
	"github.com/matzehuels/columns/pkg/config"
	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/layout"
	"github.com/matzehuels/columns/pkg/render"
)

// DefaultWorkArea is used when [Options.WorkArea] is empty.
var DefaultWorkArea = geom.Rect{W: 1920, H: 1080}

// Options configures a [Session].
type Options struct {
	// Algorithm is the registered algorithm name. Defaults to "columns".
	Algorithm string
	// WorkArea is the initial work area. Defaults to [DefaultWorkArea].
	WorkArea geom.Rect
	// Config supplies algorithm settings. A new store is created when nil.
	Config *config.Store
	// Registry resolves Algorithm. When nil, a registry with the columns
	// algorithm registered against Config is created.
	Registry *layout.Registry
	Logger   *log.Logger
}

// Session is a workspace driven by one layout algorithm.
type Session struct {
	name    string
	windows *Registry
	ws      *Workspace
	focus   *Focus
	cfg     *config.Store
	algo    layout.TiledAlgorithm
	logger  *log.Logger
}

// columnLister is implemented by algorithms that expose their columns.
type columnLister interface {
	Columns() [][]layout.Target
}

// New creates a session. It fails with UNKNOWN_ALGORITHM if the algorithm
// is not registered.
func New(opts Options) (*Session, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = columns.Name
	}
	if opts.WorkArea.Empty() {
		opts.WorkArea = DefaultWorkArea
	}
	if opts.Config == nil {
		opts.Config = config.NewStore()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Registry == nil {
		opts.Registry = layout.NewRegistry()
		if err := columns.Register(opts.Registry, opts.Config); err != nil {
			return nil, err
		}
	}

	s := &Session{
		name:    opts.Algorithm,
		windows: NewRegistry(),
		focus:   &Focus{},
		cfg:     opts.Config,
		logger:  opts.Logger,
	}
	s.ws = NewWorkspace(s.windows, opts.WorkArea)

	algo, err := opts.Registry.New(opts.Algorithm, layout.Host{
		Parent: s.ws,
		Focus:  s.focus,
		Config: s.cfg,
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	s.algo = algo
	return s, nil
}

// Algorithm returns the registered name of the session's algorithm.
func (s *Session) Algorithm() string { return s.name }

// Config returns the store the algorithm reads its settings from. Changes
// apply on the algorithm's next operation.
func (s *Session) Config() *config.Store { return s.cfg }

// Workspace returns the session's workspace.
func (s *Session) Workspace() *Workspace { return s.ws }

// Focus returns the session's focus state.
func (s *Session) Focus() *Focus { return s.focus }

// Engine returns the algorithm instance. Calling it directly bypasses the
// session's window bookkeeping.
func (s *Session) Engine() layout.TiledAlgorithm { return s.algo }

// Windows returns the live windows in creation order.
func (s *Session) Windows() []*Window { return s.windows.Windows() }

// Focused returns the focused window, or nil.
func (s *Session) Focused() *Window {
	w, _ := s.windows.Get(s.focus.Window())
	return w
}

// Spawn creates a window, hands it to the algorithm and focuses it.
func (s *Session) Spawn(title string) (*Window, error) {
	if err := errors.ValidateTitle(title); err != nil {
		return nil, err
	}
	w := s.windows.Create(title)
	s.ws.add(w.id)
	s.algo.NewTarget(w)
	s.focus.FullWindowFocus(w.id, layout.FocusReasonNewWindow)
	s.logger.Debug("spawn", "id", w.id, "title", title)
	return w, nil
}

// Close removes a window the orderly way: the algorithm picks the next
// focus candidate, then forgets the window before it is destroyed.
func (s *Session) Close(ref string) error {
	w, err := s.Lookup(ref)
	if err != nil {
		return err
	}
	next := s.algo.NextCandidate(w)
	s.algo.RemoveTarget(w)
	s.ws.remove(w.id)
	s.windows.Destroy(w.id)

	if s.focus.Window() == w.id {
		if next != nil {
			s.focus.FullWindowFocus(next.Window(), layout.FocusReasonWindowClosed)
		} else {
			s.focus.Clear()
		}
	}
	s.logger.Debug("close", "id", w.id, "title", w.title)
	return nil
}

// Kill destroys a window without telling the algorithm, then recalculates
// so the algorithm discovers the expired handle on its own.
func (s *Session) Kill(ref string) error {
	w, err := s.Lookup(ref)
	if err != nil {
		return err
	}
	s.windows.Destroy(w.id)
	s.ws.remove(w.id)
	if s.focus.Window() == w.id {
		s.focus.Clear()
	}
	s.algo.Recalculate()
	s.logger.Debug("kill", "id", w.id, "title", w.title)
	return nil
}

// FocusWindow focuses a window as if it were clicked.
func (s *Session) FocusWindow(ref string) error {
	w, err := s.Lookup(ref)
	if err != nil {
		return err
	}
	s.focus.FullWindowFocus(w.id, layout.FocusReasonClick)
	return nil
}

// Move moves a window one step in dir.
func (s *Session) Move(ref string, dir geom.Direction) error {
	w, err := s.Lookup(ref)
	if err != nil {
		return err
	}
	s.algo.MoveTargetInDirection(w, dir, false)
	return nil
}

// Swap exchanges two windows.
func (s *Session) Swap(a, b string) error {
	wa, err := s.Lookup(a)
	if err != nil {
		return err
	}
	wb, err := s.Lookup(b)
	if err != nil {
		return err
	}
	s.algo.SwapTargets(wa, wb)
	return nil
}

// Drop re-inserts a window as if it were dragged and released at point.
func (s *Session) Drop(ref string, point geom.Vec) error {
	w, err := s.Lookup(ref)
	if err != nil {
		return err
	}
	s.algo.RemoveTarget(w)
	s.algo.MovedTarget(w, &point)
	return nil
}

// Resize forwards an interactive resize.
func (s *Session) Resize(ref string, delta geom.Vec) error {
	w, err := s.Lookup(ref)
	if err != nil {
		return err
	}
	s.algo.ResizeTarget(delta, w, layout.CornerNone)
	return nil
}

// Message sends a layout message to the algorithm.
func (s *Session) Message(text string) error {
	return s.algo.LayoutMsg(text)
}

// SetWorkArea changes the work area and recalculates.
func (s *Session) SetWorkArea(area geom.Rect) error {
	if err := errors.ValidateWorkArea(area.X, area.Y, area.W, area.H); err != nil {
		return err
	}
	s.ws.SetWorkArea(area)
	s.algo.Recalculate()
	return nil
}

// Recalculate asks the algorithm to re-derive every rectangle.
func (s *Session) Recalculate() { s.algo.Recalculate() }

// Predict returns the size the next spawned window would get.
func (s *Session) Predict() (geom.Vec, bool) {
	return s.algo.PredictSizeForNewTarget()
}

// Lookup resolves a window by id, then by title. The first live window
// with a matching title wins.
func (s *Session) Lookup(ref string) (*Window, error) {
	if w, ok := s.windows.Get(layout.WindowID(ref)); ok {
		return w, nil
	}
	for _, w := range s.windows.Windows() {
		if w.title == ref {
			return w, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "window not found: %s", ref)
}

// Layout snapshots the session. Algorithms that do not expose columns are
// reported as a single column in workspace order.
func (s *Session) Layout() render.Layout {
	l := render.Layout{
		WorkArea: s.ws.WorkArea(),
		Focused:  string(s.focus.Window()),
		Columns:  []render.Column{},
	}

	lister, ok := s.algo.(columnLister)
	if !ok {
		var col render.Column
		for _, wt := range s.ws.Targets() {
			if t := wt.Lock(); t != nil {
				col.Windows = append(col.Windows, snapshot(t))
			}
		}
		if len(col.Windows) > 0 {
			l.Columns = append(l.Columns, col)
		}
		return l
	}

	for _, targets := range lister.Columns() {
		var col render.Column
		for _, t := range targets {
			col.Windows = append(col.Windows, snapshot(t))
		}
		l.Columns = append(l.Columns, col)
	}
	return l
}

func snapshot(t layout.Target) render.Window {
	out := render.Window{ID: string(t.Window())}
	if w, ok := t.(*Window); ok {
		out.Title = w.title
		out.Rect = w.rect
	}
	return out
}
