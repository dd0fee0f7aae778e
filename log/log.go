package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Logger writes leveled lines to a single output.
//
// The zero value discards everything. Use [Make] to create a Logger, and
// [Logger.Wrap] to derive one with different options.
type Logger struct {
	*slog.Logger
	config
}

// Make creates a new [Logger] that writes to the specified writer.
// The default configuration is [DefaultZone], [DefaultPrefix],
// [DefaultColor] and [DefaultPalette], stamped by [time.Now].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Wrap returns a new [Logger] using the current configuration overridden by
// opts. Loggers that keep the same output share one write lock.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.Logger == nil {
		return Make(nil, opts...)
	}

	cfg := l.clone(opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Zone returns the zone timestamps are rendered in.
func (l Logger) Zone() Zone {
	if l.Logger == nil {
		return DefaultZone
	}

	return l.zone
}

// Prefix reports whether lines include the calling package path.
func (l Logger) Prefix() bool {
	if l.Logger == nil {
		return DefaultPrefix
	}

	return l.prefix
}

// Output writes one line of severity s with message msg.
//
// Calldepth is the number of stack frames to skip when determining the
// call site, where 1 is the caller of Output. It is used for the module
// prefix and the [SeverityFlag] location marker.
//
// Output returns any error from the underlying writer.
func (l Logger) Output(calldepth int, s Severity, msg string) error {
	// Silently return for zero value loggers
	if l.Logger == nil {
		return nil
	}

	var pcs [1]uintptr
	// +1 skips runtime.Callers itself.
	runtime.Callers(calldepth+1, pcs[:])

	r := slog.NewRecord(l.clock(), s.Level(), msg, pcs[0])

	return l.Handler().Handle(DefaultContextProvider(), r)
}

// Infof logs a formatted message at [SeverityInfo].
func (l Logger) Infof(format string, args ...any) {
	_ = l.Output(2, SeverityInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at [SeverityWarn].
func (l Logger) Warnf(format string, args ...any) {
	_ = l.Output(2, SeverityWarn, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at [SeverityError].
func (l Logger) Errorf(format string, args ...any) {
	_ = l.Output(2, SeverityError, fmt.Sprintf(format, args...))
}

// Debugf logs a formatted message at [SeverityDebug].
func (l Logger) Debugf(format string, args ...any) {
	_ = l.Output(2, SeverityDebug, fmt.Sprintf(format, args...))
}

// Tracef logs a formatted message at [SeverityTrace].
func (l Logger) Tracef(format string, args ...any) {
	_ = l.Output(2, SeverityTrace, fmt.Sprintf(format, args...))
}

// Flag logs a bare [SeverityFlag] marker with the file and line of the
// call.
func (l Logger) Flag() {
	_ = l.Output(2, SeverityFlag, "")
}

// Flagf logs a [SeverityFlag] marker with the file and line of the call,
// followed by a formatted message.
func (l Logger) Flagf(format string, args ...any) {
	_ = l.Output(2, SeverityFlag, fmt.Sprintf(format, args...))
}

// DefaultContextProvider returns the context passed to the handler by
// [Logger.Output].
var DefaultContextProvider = context.TODO
