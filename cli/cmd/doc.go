// Package cmd provides the clog subcommands: one per severity, each
// writing a single line through the default logger, plus demo.
//
// A message given as the single argument "-" is read from standard input
// instead, producing one line per input line.
package cmd
