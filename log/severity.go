package log

import (
	"iter"
	"log/slog"
	"strconv"
	"strings"
)

// Severity identifies the kind of a log line. It selects the tag text and
// the tag color.
type Severity int

const (
	SeverityInfo  Severity = iota // info
	SeverityWarn                  // warn
	SeverityError                 // error
	SeverityDebug                 // debug
	SeverityTrace                 // trace
	SeverityFlag                  // flag
)

// slog levels backing each severity.
const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
	LevelFlag  = slog.Level(12)
)

// tagWidth is the column width of every severity tag.
const tagWidth = 5

var severityName = [...]string{
	SeverityInfo:  "info",
	SeverityWarn:  "warn",
	SeverityError: "error",
	SeverityDebug: "debug",
	SeverityTrace: "trace",
	SeverityFlag:  "flag",
}

// Severities returns an iterator over all defined severities in declaration
// order.
func Severities() iter.Seq[Severity] {
	return func(yield func(Severity) bool) {
		for s := range severityName {
			if !yield(Severity(s)) {
				return
			}
		}
	}
}

func (s Severity) valid() bool {
	return s >= 0 && int(s) < len(severityName)
}

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if !s.valid() {
		return "Severity(" + strconv.Itoa(int(s)) + ")"
	}

	return severityName[s]
}

// Tag returns the uppercase severity name left-padded with spaces to
// [tagWidth] columns, so that tags line up when printed in a column.
func (s Severity) Tag() string {
	name := strings.ToUpper(s.String())
	if n := len(name); n < tagWidth {
		return strings.Repeat(" ", tagWidth-n) + name
	}

	return name
}

// Level returns the [slog.Level] a record of this severity is logged at.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityTrace:
		return LevelTrace
	case SeverityDebug:
		return LevelDebug
	case SeverityWarn:
		return LevelWarn
	case SeverityError:
		return LevelError
	case SeverityFlag:
		return LevelFlag
	default:
		return LevelInfo
	}
}

// Role returns the style role of the severity tag.
func (s Severity) Role() Role {
	switch s {
	case SeverityWarn:
		return RoleWarn
	case SeverityError:
		return RoleError
	case SeverityDebug:
		return RoleDebug
	case SeverityTrace:
		return RoleTrace
	case SeverityFlag:
		return RoleFlag
	default:
		return RoleInfo
	}
}

// SeverityOf returns the severity for a [slog.Level].
// Levels between two defined severities belong to the lower one.
func SeverityOf(level slog.Level) Severity {
	switch {
	case level < LevelDebug:
		return SeverityTrace
	case level < LevelInfo:
		return SeverityDebug
	case level < LevelWarn:
		return SeverityInfo
	case level < LevelError:
		return SeverityWarn
	case level < LevelFlag:
		return SeverityError
	default:
		return SeverityFlag
	}
}

// ParseSeverity parses the name of a severity, ignoring case and
// surrounding whitespace. It reports false if s names no severity.
func ParseSeverity(s string) (Severity, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for sev := range Severities() {
		if severityName[sev] == s {
			return sev, true
		}
	}

	return SeverityInfo, false
}
