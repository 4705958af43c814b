package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements LayoutHooks and HTTPHooks by writing debug-level
// records to a logger. Failed layout messages are logged at warn level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks creates log-backed hooks. A nil logger uses log.Default().
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnRecalculate(columns, targets int, duration time.Duration) {
	h.Logger.Debug("layout recalculated", "columns", columns, "targets", targets, "duration", duration)
}

func (h *LogHooks) OnMessage(command string, err error) {
	if err != nil {
		h.Logger.Warn("layout message failed", "command", command, "err", err)
		return
	}
	h.Logger.Debug("layout message", "command", command)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, statusCode int, duration time.Duration) {
	h.Logger.Info("response", "method", method, "path", path, "status", statusCode, "duration", duration)
}

var (
	_ LayoutHooks = (*LogHooks)(nil)
	_ HTTPHooks   = (*LogHooks)(nil)
)
