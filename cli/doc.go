// Package cli contains the command line interface for clog.
//
// # Usage
//
// Each severity has a subcommand that writes one line:
//
//	clog info "Version: 0.1.0"
//	clog warn --jst device is deprecated
//	clog flag
//	tail -f app.out | clog debug -
//
// Without a subcommand, clog writes a demo session covering every severity.
//
// # Logging Options
//
//   - --log-zone: Render timestamps in this zone (utc, jst)
//   - --log-color: Colorize output (auto, always, never)
//   - --[no-]log-prefix: Prefix messages with the calling package path
//
// The defaults of --log-zone and --log-prefix follow the build tags
// clog_jst and clog_modpath of package log.
//
// # Configuration File
//
// Flag defaults are read from config.yaml (or config.yml) in the user
// configuration directory, for example ~/.config/clog/config.yaml:
//
//	log:
//	  zone: jst
//	  color: always
//	  prefix: true
//
// Command-line flags override config file values.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o clog .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/clog/pprof)
package cli
