// Package log writes leveled, color-coded lines to a console.
//
// Each call produces exactly one line:
//
//	2022-12-18T07:02:03(UTC)  INFO Version: 0.1.0
//	2022-12-18T07:02:03(UTC)  WARN Your device "Foo PC" is deprecated
//	2022-12-18T07:02:03(UTC) ERROR Fatal: Operating System is not found
//	2022-12-18T07:02:03(UTC) DEBUG Buffer: 0x12345678
//	2022-12-18T07:02:03(UTC) TRACE Age: 17
//	2022-12-18T07:02:03(UTC)  FLAG [main.go:21]
//	2022-12-18T07:02:03(UTC)  FLAG [main.go:22] i wake up!
//
// # Basic Usage
//
// The package-level functions write to standard output:
//
//	log.Infof("Version: %s", ver)
//	log.Flag()
//	log.Flagf("i wake up!")
//
// # Configuration
//
// Configure a [Logger] using functional options:
//
//	logger := log.Make(os.Stdout,
//		log.WithZone(log.ZoneJST),
//		log.WithPrefix(true),
//		log.WithColor(log.ColorAlways))
//
// The package-level default logger is reconfigured with [Config].
//
// # Build Tags
//
// Two build tags select the defaults of every logger:
//
//   - clog_jst: render timestamps at UTC+9 with label (JST) instead of UTC.
//   - clog_modpath: prefix each message with the calling package path.
//
// Package [github.com/ardnew/clog/log/jst] always renders UTC+9, for
// programs that need both zones in one build.
//
// # Colors
//
// Colors are assigned per [Role] by a [Palette] and rendered with
// lipgloss. By default colors are used only when the output is a terminal;
// see [WithColor].
//
// # slog
//
// [Logger] embeds a [slog.Logger], and [NewHandler] returns the underlying
// [slog.Handler], so code written against log/slog can produce the same
// lines. Attributes are not rendered.
package log
