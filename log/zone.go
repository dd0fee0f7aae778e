package log

import (
	"iter"
	"strings"
	"time"
)

// Zone selects the UTC offset used to render timestamps.
type Zone int

const (
	ZoneUTC Zone = iota // utc
	ZoneJST             // jst
)

// jstOffset is the fixed offset of [ZoneJST] east of UTC, in seconds.
const jstOffset = 9 * 60 * 60

var jst = time.FixedZone("JST", jstOffset)

// TimeLayout is the layout of every rendered timestamp.
const TimeLayout = "2006-01-02T15:04:05"

// Zones returns an iterator over the names of all defined zones.
func Zones() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, z := range []Zone{ZoneUTC, ZoneJST} {
			if !yield(z.String()) {
				return
			}
		}
	}
}

// ParseZone parses the name of a zone, ignoring case and surrounding
// whitespace. Unrecognized names return [DefaultZone].
func ParseZone(s string) Zone {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "utc":
		return ZoneUTC
	case "jst":
		return ZoneJST
	default:
		return DefaultZone
	}
}

// String returns the lowercase name of the zone.
func (z Zone) String() string {
	if z == ZoneJST {
		return "jst"
	}

	return "utc"
}

// Location returns the location timestamps are converted to.
func (z Zone) Location() *time.Location {
	if z == ZoneJST {
		return jst
	}

	return time.UTC
}

// Label returns the parenthesized zone marker printed after each timestamp.
func (z Zone) Label() string {
	if z == ZoneJST {
		return "(JST)"
	}

	return "(UTC)"
}

// Format renders t in the zone using [TimeLayout].
func (z Zone) Format(t time.Time) string {
	return t.In(z.Location()).Format(TimeLayout)
}
