package cli

import (
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/log"
)

// logZone is a custom type that configures the logger zone as a side
// effect of parsing via encoding.TextUnmarshaler.
type logZone string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-zone flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (z *logZone) UnmarshalText(text []byte) error {
	*z = logZone(text)
	log.Config(log.WithZone(log.ParseZone(string(*z))))

	return nil
}

// logColor is a custom type that configures the logger color mode as a side
// effect of parsing via encoding.TextUnmarshaler.
type logColor string

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *logColor) UnmarshalText(text []byte) error {
	*c = logColor(text)
	log.Config(log.WithColor(log.ParseColorMode(string(*c))))

	return nil
}

type logConfig struct {
	Zone   logZone  `default:"${logZone}"   enum:"${logZoneEnum}"  help:"Render timestamps in this zone."`
	Color  logColor `default:"${logColor}"  enum:"${logColorEnum}" help:"Colorize output."`
	Prefix bool     `default:"${logPrefix}"                        help:"Prefix messages with the calling package path." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logZone":      log.DefaultZone.String(),
		"logZoneEnum":  strings.Join(slices.Collect(log.Zones()), ","),
		"logColor":     log.DefaultColor.String(),
		"logColorEnum": strings.Join(slices.Collect(log.ColorModes()), ","),
		"logPrefix":    strconv.FormatBool(log.DefaultPrefix),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start applies the parsed flags to the default logger.
func (f *logConfig) start() {
	log.Config(
		log.WithZone(log.ParseZone(string(f.Zone))),
		log.WithColor(log.ParseColorMode(string(f.Color))),
		log.WithPrefix(f.Prefix),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line.
//
// While logZone and logColor implement encoding.TextUnmarshaler to configure
// the logger as flags are encountered during parsing, the boolean prefix
// flag doesn't go through that interface.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		// next consumes the following argument as the value of a
		// non-boolean flag given without "=".
		next := func() string {
			if !assigned && i+1 < len(args) && args[i+1] != "" &&
				args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		switch name {
		case "--":
			return

		case "--log-zone":
			_ = f.Zone.UnmarshalText([]byte(next()))

		case "--log-color":
			_ = f.Color.UnmarshalText([]byte(next()))

		case "--log-prefix", "--no-log-prefix":
			enable := true
			if assigned {
				v, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				enable = v
			}

			if name == "--no-log-prefix" {
				enable = !enable
			}

			f.Prefix = enable
			log.Config(log.WithPrefix(enable))
		}
	}
}
