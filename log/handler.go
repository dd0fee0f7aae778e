package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// lineHandler is a [slog.Handler] that writes each record as one [Line].
//
// Every level is enabled. Attributes and groups are accepted but never
// rendered.
type lineHandler struct {
	mu       *sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
	palette  Palette
	zone     Zone
	prefix   bool
}

// NewHandler returns a [slog.Handler] that writes records to w in the same
// format as [Logger], configured by opts.
//
//	slog.SetDefault(slog.New(log.NewHandler(os.Stdout)))
//
// Records at [LevelFlag] and above render the call site location.
func NewHandler(w io.Writer, opts ...Option) slog.Handler {
	return makeConfig(w, opts...).handler()
}

func newLineHandler(c config) *lineHandler {
	mu := c.mutex
	if mu == nil {
		mu = &sync.Mutex{}
	}

	return &lineHandler{
		mu:       mu,
		w:        c.output,
		renderer: newRenderer(c.output, c.color),
		palette:  c.palette,
		zone:     c.zone,
		prefix:   c.prefix,
	}
}

func (h *lineHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	ln := Line{
		Time:     r.Time,
		Zone:     h.zone,
		Severity: SeverityOf(r.Level),
		Message:  r.Message,
	}

	if h.prefix || ln.Severity == SeverityFlag {
		frame := callerFrame(r.PC)

		if h.prefix {
			ln.Module = packagePath(frame.Function)
		}

		if ln.Severity == SeverityFlag {
			ln.File, ln.LineNo = frame.File, frame.Line
		}
	}

	buf := make([]byte, 0, 128)
	buf = append(buf, ln.Render(h.renderer, h.palette)...)
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf)

	return err
}

func (h *lineHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}

// callerFrame resolves the program counter recorded with a log record.
func callerFrame(pc uintptr) runtime.Frame {
	if pc == 0 {
		return runtime.Frame{}
	}

	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()

	return frame
}
