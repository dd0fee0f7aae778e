//go:build clog_modpath

package log

// DefaultPrefix reports whether loggers prefix messages with the calling
// package path unless told otherwise by [WithPrefix].
// Build without tag clog_modpath to disable it.
const DefaultPrefix = true
