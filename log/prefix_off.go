//go:build !clog_modpath

package log

// DefaultPrefix reports whether loggers prefix messages with the calling
// package path unless told otherwise by [WithPrefix].
// Build with tag clog_modpath to enable it.
const DefaultPrefix = false
