package log

import (
	"io"
	"log/slog"
	"maps"
	"sync"
	"time"
)

// Clock returns the current instant stamped on each line.
type Clock func() time.Time

// config holds the configuration options for a Logger.
type config struct {
	mutex   *sync.Mutex // serializes writes to output
	output  io.Writer
	clock   Clock
	palette Palette
	zone    Zone
	color   ColorMode
	prefix  bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(w io.Writer, opts ...Option) config {
	return apply(apply(config{}, WithDefaults(w)), opts...)
}

// clone returns a copy of the config with any provided options applied.
// The copy shares the write mutex only while it keeps the same output.
func (c config) clone(opts ...Option) config {
	c.palette = maps.Clone(c.palette)
	out := c.output

	c = apply(c, opts...)
	if c.output != out || c.mutex == nil {
		c.mutex = &sync.Mutex{}
	}

	return c
}

// handler creates a slog.Handler based on the current configuration.
func (c config) handler() slog.Handler {
	return newLineHandler(c)
}

// WithDefaults returns a functional option that resets the configuration to
// its defaults: output w, [DefaultZone], [DefaultPrefix], [DefaultColor],
// [DefaultPalette] and [time.Now].
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.mutex = &sync.Mutex{}
		c.output = w
		c.clock = time.Now
		c.palette = DefaultPalette()
		c.zone = DefaultZone
		c.color = DefaultColor
		c.prefix = DefaultPrefix

		return c
	}
}

// WithOutput returns a functional option that sets the [io.Writer] lines
// are written to.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithZone returns a functional option that sets the zone timestamps are
// rendered in.
func WithZone(zone Zone) Option {
	return func(c config) config {
		c.zone = zone

		return c
	}
}

// WithPrefix returns a functional option that controls whether each line
// includes the import path of the calling package.
func WithPrefix(enable bool) Option {
	return func(c config) config {
		c.prefix = enable

		return c
	}
}

// WithColor returns a functional option that sets the color mode.
func WithColor(mode ColorMode) Option {
	return func(c config) config {
		c.color = mode

		return c
	}
}

// WithPalette returns a functional option that replaces the color scheme.
// A nil palette writes every role unstyled.
func WithPalette(p Palette) Option {
	return func(c config) config {
		c.palette = maps.Clone(p)

		return c
	}
}

// WithClock returns a functional option that sets the source of line
// timestamps. A nil clock selects [time.Now].
// Records logged through the embedded [slog.Logger] keep the time slog
// assigned them.
func WithClock(clock Clock) Option {
	return func(c config) config {
		if clock == nil {
			clock = time.Now
		}

		c.clock = clock

		return c
	}
}
