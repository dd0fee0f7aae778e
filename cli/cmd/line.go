package cmd

import (
	"bufio"
	"context"
	"strings"

	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/log/jst"
	"github.com/ardnew/clog/pkg"
)

// Line holds the arguments shared by the severity subcommands.
type Line struct {
	JST     bool     `help:"Render the timestamp at UTC+9 regardless of --log-zone."`
	Message []string `arg:"" help:"Message words joined by spaces, or '-' to read lines from stdin." optional:""`
}

func (l *Line) logger() log.Logger {
	if l.JST {
		return jst.Logger()
	}

	return log.Default()
}

// write logs the message as severity s. Calldepth is counted from the
// caller of write, as for [log.Logger.Output].
func (l *Line) write(ctx context.Context, calldepth int, s log.Severity) error {
	logger := l.logger()

	if len(l.Message) != 1 || l.Message[0] != stdinArg {
		return l.output(logger, calldepth+1, s, strings.Join(l.Message, " "))
	}

	scan := bufio.NewScanner(inputFrom(ctx))
	for scan.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := l.output(logger, calldepth+1, s, scan.Text())
		if err != nil {
			return err
		}
	}

	if err := scan.Err(); err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}

	return nil
}

func (l *Line) output(
	logger log.Logger,
	calldepth int,
	s log.Severity,
	msg string,
) error {
	err := logger.Output(calldepth+1, s, msg)
	if err != nil {
		return pkg.ErrWriteLine.Wrap(err)
	}

	return nil
}

// Info writes an INFO line.
type Info struct {
	Line `embed:""`
}

// Run executes the info command.
func (c *Info) Run(ctx context.Context) error {
	return c.write(ctx, 1, log.SeverityInfo)
}

// Warn writes a WARN line.
type Warn struct {
	Line `embed:""`
}

// Run executes the warn command.
func (c *Warn) Run(ctx context.Context) error {
	return c.write(ctx, 1, log.SeverityWarn)
}

// Error writes an ERROR line.
type Error struct {
	Line `embed:""`
}

// Run executes the error command.
func (c *Error) Run(ctx context.Context) error {
	return c.write(ctx, 1, log.SeverityError)
}

// Debug writes a DEBUG line.
type Debug struct {
	Line `embed:""`
}

// Run executes the debug command.
func (c *Debug) Run(ctx context.Context) error {
	return c.write(ctx, 1, log.SeverityDebug)
}

// Trace writes a TRACE line.
type Trace struct {
	Line `embed:""`
}

// Run executes the trace command.
func (c *Trace) Run(ctx context.Context) error {
	return c.write(ctx, 1, log.SeverityTrace)
}

// Flag writes a FLAG line. Its location marker points at this command.
type Flag struct {
	Line `embed:""`
}

// Run executes the flag command.
func (c *Flag) Run(ctx context.Context) error {
	return c.write(ctx, 1, log.SeverityFlag)
}
