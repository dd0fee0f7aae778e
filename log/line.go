package log

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// unknownFile is reported in place of a call site that cannot be resolved.
const unknownFile = "???"

// Line is a single formatted log line.
//
// A Line is built for one call and discarded once written. Rendering is a
// pure function of its fields.
type Line struct {
	Time     time.Time
	Zone     Zone
	Severity Severity
	// Module is the import path of the calling package. Empty omits the
	// module segment.
	Module string
	// File and LineNo locate the call site. They are rendered only for
	// [SeverityFlag].
	File    string
	LineNo  int
	Message string
}

// String returns the line without colors and without a trailing newline.
func (ln Line) String() string {
	return ln.Render(nil, nil)
}

// Render returns the line styled by r with the colors of p, without a
// trailing newline. A nil renderer writes no escape sequences.
//
// The layout is:
//
//	<time><zone> <tag>[ <module>:][ [<file>:<line>]] <message>
//
// The location marker is present only for [SeverityFlag], which also omits
// the message segment when the message is empty.
func (ln Line) Render(r *lipgloss.Renderer, p Palette) string {
	var sb strings.Builder

	sb.WriteString(p.paint(r, RoleTimestamp, ln.Zone.Format(ln.Time)))
	sb.WriteString(p.paint(r, RoleZone, ln.Zone.Label()))
	sb.WriteByte(' ')
	sb.WriteString(p.paint(r, ln.Severity.Role(), ln.Severity.Tag()))

	if ln.Module != "" {
		sb.WriteByte(' ')
		sb.WriteString(p.paint(r, RoleModule, ln.Module+":"))
	}

	if ln.Severity == SeverityFlag {
		sb.WriteByte(' ')
		sb.WriteString(p.paint(r, RoleLocation, ln.location()))

		if ln.Message == "" {
			return sb.String()
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.paint(r, RoleMessage, ln.Message))

	return sb.String()
}

func (ln Line) location() string {
	file := ln.File
	if file == "" {
		file = unknownFile
	}

	return "[" + filepath.Base(file) + ":" + strconv.Itoa(ln.LineNo) + "]"
}

// packagePath returns the import path of the package that declares the
// fully-qualified function name fn, as reported by [runtime.Frame].
//
//	github.com/ardnew/clog/log.(*T).M.func1 -> github.com/ardnew/clog/log
//	main.main                               -> main
//	gopkg.in/yaml%2ev3.Marshal              -> gopkg.in/yaml.v3
func packagePath(fn string) string {
	if fn == "" {
		return ""
	}

	dir, base := "", fn
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		dir, base = fn[:i+1], fn[i+1:]
	}

	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	// The linker escapes dots in the last path element.
	return dir + strings.ReplaceAll(base, "%2e", ".")
}
