package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/columns/pkg/events"
	"github.com/matzehuels/columns/pkg/observability"
	"github.com/matzehuels/columns/pkg/sim"
)

// Option configures a [Server].
type Option func(*Server)

// WithPublisher sets where mutation events go. Defaults to a null publisher.
func WithPublisher(p events.Publisher) Option { return func(s *Server) { s.pub = p } }

// WithLogger sets the server logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// Server serves one session.
type Server struct {
	mu     sync.Mutex
	sess   *sim.Session
	pub    events.Publisher
	logger *log.Logger
	router chi.Router
}

// New builds the router for sess.
func New(sess *sim.Session, opts ...Option) *Server {
	s := &Server{
		sess:   sess,
		pub:    events.NewNullPublisher(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Do runs fn with exclusive access to the session. Code outside request
// handlers, such as a config reload, must go through Do.
func (s *Server) Do(fn func(*sim.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.sess)
}

// Notify runs fn under the session lock and publishes an event of typ with
// the resulting layout.
func (s *Server) Notify(ctx context.Context, typ events.Type, fn func(*sim.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.sess); err != nil {
		return err
	}
	s.publish(ctx, events.New(typ, "", s.sess.Layout()))
	return nil
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(hooksMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/layout", s.handleLayout)
	r.Get("/layout.svg", s.handleLayoutSVG)
	r.Get("/layout.dot", s.handleLayoutDOT)
	r.Get("/predict", s.handlePredict)
	r.Put("/workarea", s.handleWorkArea)
	r.Post("/swap", s.handleSwap)
	r.Post("/layoutmsg", s.handleLayoutMsg)

	r.Route("/windows", func(r chi.Router) {
		r.Post("/", s.handleSpawn)
		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", s.handleClose)
			r.Post("/focus", s.handleFocus)
			r.Post("/move", s.handleMove)
			r.Post("/drop", s.handleDrop)
		})
	})
	return r
}

// hooksMiddleware reports requests to the observability HTTP hooks.
func hooksMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		ctx := r.Context()
		hooks.OnRequest(ctx, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(ctx, r.Method, r.URL.Path, status, time.Since(start))
	})
}

// publish sends ev; failures are logged, never returned to the client.
func (s *Server) publish(ctx context.Context, ev events.Event) {
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.logger.Warn("publish failed", "type", ev.Type, "err", err)
	}
}
