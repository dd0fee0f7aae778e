package log

import (
	"fmt"
	"os"
	"sync/atomic"
)

var defaultLog atomic.Pointer[Logger]

func init() {
	SetDefault(Make(os.Stdout))
}

// Default returns the logger used by the package-level functions.
func Default() Logger {
	return *defaultLog.Load()
}

// SetDefault replaces the logger used by the package-level functions.
func SetDefault(l Logger) {
	defaultLog.Store(&l)
}

// Config updates the default logger with the given options.
func Config(opts ...Option) {
	SetDefault(Default().Wrap(opts...))
}

// Infof logs a formatted message at [SeverityInfo] using the default logger.
func Infof(format string, args ...any) {
	_ = Default().Output(2, SeverityInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at [SeverityWarn] using the default logger.
func Warnf(format string, args ...any) {
	_ = Default().Output(2, SeverityWarn, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at [SeverityError] using the default
// logger.
func Errorf(format string, args ...any) {
	_ = Default().Output(2, SeverityError, fmt.Sprintf(format, args...))
}

// Debugf logs a formatted message at [SeverityDebug] using the default
// logger.
func Debugf(format string, args ...any) {
	_ = Default().Output(2, SeverityDebug, fmt.Sprintf(format, args...))
}

// Tracef logs a formatted message at [SeverityTrace] using the default
// logger.
func Tracef(format string, args ...any) {
	_ = Default().Output(2, SeverityTrace, fmt.Sprintf(format, args...))
}

// Flag logs a bare [SeverityFlag] marker with the file and line of the call
// using the default logger.
func Flag() {
	_ = Default().Output(2, SeverityFlag, "")
}

// Flagf logs a [SeverityFlag] marker with the file and line of the call,
// followed by a formatted message, using the default logger.
func Flagf(format string, args ...any) {
	_ = Default().Output(2, SeverityFlag, fmt.Sprintf(format, args...))
}
