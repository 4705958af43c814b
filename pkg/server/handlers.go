package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/columns/pkg/buildinfo"
	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/events"
	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/render"
	"github.com/matzehuels/columns/pkg/sim"
)

type spawnRequest struct {
	Title string `json:"title"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type swapRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type messageRequest struct {
	Message string `json:"message"`
}

type predictResponse struct {
	W  float64 `json:"w"`
	H  float64 `json:"h"`
	OK bool    `json:"ok"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Algorithm string `json:"algorithm"`
	Windows   int    `json:"windows"`
	Version   string `json:"version"`
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := healthResponse{Status: "ok", Algorithm: s.sess.Algorithm(), Windows: len(s.sess.Windows()), Version: buildinfo.Version}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	l := s.sess.Layout()
	s.mu.Unlock()
	s.writeLayout(w, http.StatusOK, l)
}

func (s *Server) handleLayoutSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	l := s.sess.Layout()
	s.mu.Unlock()

	var opts []render.SVGOption
	if v := r.URL.Query().Get("width"); v != "" {
		width, err := strconv.ParseFloat(v, 64)
		if err != nil || width <= 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid width %q", v))
			return
		}
		opts = append(opts, render.WithWidth(width))
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(render.RenderSVG(l, opts...))
}

func (s *Server) handleLayoutDOT(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	dot := render.ToDOT(s.sess.Layout())
	s.mu.Unlock()

	if r.URL.Query().Get("format") != "svg" {
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(dot))
		return
	}
	svg, err := render.RenderTreeSVG(r.Context(), dot)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	size, ok := s.sess.Predict()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, predictResponse{W: size.X, H: size.Y, OK: ok})
}

func (s *Server) handleWorkArea(w http.ResponseWriter, r *http.Request) {
	var area geom.Rect
	if !s.decode(w, r, &area) {
		return
	}
	s.mutate(w, r, events.TypeWorkArea, "", func(sess *sim.Session) error {
		return sess.SetWorkArea(area)
	})
}

func (s *Server) handleSpawn(w http.ResponseWriter, r *http.Request) {
	var req spawnRequest
	if !s.decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	win, err := s.sess.Spawn(req.Title)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l := s.sess.Layout()
	ev := events.New(events.TypeSpawn, win.ID(), l)
	ev.Detail = win.Title()
	s.publish(r.Context(), ev)

	out, _, _ := l.Find(win.ID())
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	kill, _ := strconv.ParseBool(r.URL.Query().Get("kill"))
	s.mutate(w, r, events.TypeClose, id, func(sess *sim.Session) error {
		if kill {
			return sess.Kill(id)
		}
		return sess.Close(id)
	})
}

func (s *Server) handleFocus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mutate(w, r, events.TypeFocus, id, func(sess *sim.Session) error {
		return sess.FocusWindow(id)
	})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req moveRequest
	if !s.decode(w, r, &req) {
		return
	}
	dir, err := geom.ParseDirection(req.Direction)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid direction"))
		return
	}
	s.mutate(w, r, events.TypeMove, id, func(sess *sim.Session) error {
		return sess.Move(id, dir)
	})
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var point geom.Vec
	if !s.decode(w, r, &point) {
		return
	}
	s.mutate(w, r, events.TypeDrop, id, func(sess *sim.Session) error {
		return sess.Drop(id, point)
	})
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req swapRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.mutate(w, r, events.TypeSwap, req.A, func(sess *sim.Session) error {
		return sess.Swap(req.A, req.B)
	})
}

func (s *Server) handleLayoutMsg(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.mutate(w, r, events.TypeMessage, "", func(sess *sim.Session) error {
		return sess.Message(req.Message)
	})
}

// mutate applies fn under the session lock, publishes an event and writes
// the new layout.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, typ events.Type, window string, fn func(*sim.Session) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.sess); err != nil {
		s.writeError(w, r, err)
		return
	}
	l := s.sess.Layout()
	s.publish(r.Context(), events.New(typ, window, l))
	s.writeLayout(w, http.StatusOK, l)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return false
	}
	return true
}

func (s *Server) writeLayout(w http.ResponseWriter, status int, l render.Layout) {
	data, err := render.RenderJSON(l)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "err", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "code", code, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidArg, errors.ErrCodeInvalidConfig,
		errors.ErrCodeUnknownCommand, errors.ErrCodeUnknownAlgorithm,
		errors.ErrCodeNoParent, errors.ErrCodeNoSpace, errors.ErrCodeNoFocus, errors.ErrCodeNotTracked:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
