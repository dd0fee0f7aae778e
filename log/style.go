package log

import (
	"io"
	"iter"
	"maps"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Role is the semantic part of a log line a color is assigned to.
type Role int

const (
	RoleTimestamp Role = iota // timestamp
	RoleZone                  // zone
	RoleModule                // module
	RoleLocation              // location
	RoleMessage               // message
	RoleInfo                  // info
	RoleWarn                  // warn
	RoleError                 // error
	RoleDebug                 // debug
	RoleTrace                 // trace
	RoleFlag                  // flag
)

// ANSI color indices used by the default palette.
const (
	colorGreen         = lipgloss.Color("2")
	colorBrightBlack   = lipgloss.Color("8")
	colorBrightRed     = lipgloss.Color("9")
	colorBrightYellow  = lipgloss.Color("11")
	colorBrightBlue    = lipgloss.Color("12")
	colorBrightMagenta = lipgloss.Color("13")
	colorBrightCyan    = lipgloss.Color("14")
)

// Palette maps each [Role] to the color it is rendered in.
// Roles without an entry, or mapped to nil or [lipgloss.NoColor], are
// written without styling.
type Palette map[Role]lipgloss.TerminalColor

// DefaultPalette returns a new copy of the default color scheme.
//
// Severity tags are colored per severity. The timestamp, zone label,
// module path and location marker are muted. Messages are left as-is.
func DefaultPalette() Palette {
	return Palette{
		RoleTimestamp: colorBrightBlack,
		RoleZone:      colorBrightBlack,
		RoleModule:    colorBrightBlack,
		RoleLocation:  colorBrightBlack,
		RoleInfo:      colorGreen,
		RoleWarn:      colorBrightYellow,
		RoleError:     colorBrightRed,
		RoleDebug:     colorBrightCyan,
		RoleTrace:     colorBrightBlue,
		RoleFlag:      colorBrightMagenta,
	}
}

// With returns a copy of p with role mapped to color.
func (p Palette) With(role Role, color lipgloss.TerminalColor) Palette {
	q := maps.Clone(p)
	if q == nil {
		q = Palette{}
	}

	q[role] = color

	return q
}

// ColorMode controls whether lines are written with ANSI colors.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // auto
	ColorAlways                  // always
	ColorNever                   // never
)

// DefaultColor is the default color mode.
const DefaultColor = ColorAuto

// ColorModes returns an iterator over the names of all color modes.
func ColorModes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, m := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
			if !yield(m.String()) {
				return
			}
		}
	}
}

// ParseColorMode parses the name of a color mode.
// Unrecognized names return [DefaultColor].
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "on", "true":
		return ColorAlways
	case "never", "off", "false":
		return ColorNever
	default:
		return DefaultColor
	}
}

// String returns the lowercase name of the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// newRenderer returns a lipgloss renderer for w with its color profile
// fixed by mode. [ColorAuto] leaves detection to termenv, which disables
// colors for anything that is not a terminal.
func newRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return r
}

// paint renders s in the color the palette assigns to role.
func (p Palette) paint(r *lipgloss.Renderer, role Role, s string) string {
	if r == nil || r.ColorProfile() == termenv.Ascii {
		return s
	}

	color, ok := p[role]
	if !ok || color == nil {
		return s
	}

	if _, none := color.(lipgloss.NoColor); none {
		return s
	}

	return r.NewStyle().Foreground(color).Render(s)
}
