// Package jst logs through the default [log.Logger] with timestamps always
// rendered at UTC+9 and labeled (JST), whatever zone the default logger or
// the build selects.
//
// Output, prefix, color, palette and clock follow [log.Default].
//
//	log.Infof("deploy started")  // 2022-12-18T23:30:00(UTC)  INFO deploy started
//	jst.Infof("deploy started")  // 2022-12-19T08:30:00(JST)  INFO deploy started
package jst

import (
	"fmt"

	"github.com/ardnew/clog/log"
)

// Logger returns the default logger converted to [log.ZoneJST].
func Logger() log.Logger {
	return log.Default().Wrap(log.WithZone(log.ZoneJST))
}

// Infof logs a formatted INFO line.
func Infof(format string, args ...any) {
	_ = Logger().Output(2, log.SeverityInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted WARN line.
func Warnf(format string, args ...any) {
	_ = Logger().Output(2, log.SeverityWarn, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted ERROR line.
func Errorf(format string, args ...any) {
	_ = Logger().Output(2, log.SeverityError, fmt.Sprintf(format, args...))
}

// Debugf logs a formatted DEBUG line.
func Debugf(format string, args ...any) {
	_ = Logger().Output(2, log.SeverityDebug, fmt.Sprintf(format, args...))
}

// Tracef logs a formatted TRACE line.
func Tracef(format string, args ...any) {
	_ = Logger().Output(2, log.SeverityTrace, fmt.Sprintf(format, args...))
}

// Flag logs a bare flag marker with the file and line of the call.
func Flag() {
	_ = Logger().Output(2, log.SeverityFlag, "")
}

// Flagf logs a flag marker with the file and line of the call, followed by
// a formatted message.
func Flagf(format string, args ...any) {
	_ = Logger().Output(2, log.SeverityFlag, fmt.Sprintf(format, args...))
}
