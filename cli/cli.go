package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/cli/cmd"
	"github.com/ardnew/clog/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// configFiles returns the configuration files read for flag defaults.
// Missing files are skipped.
var configFiles = func() []string {
	return []string{
		pkg.ConfigPath(baseConfig + ".yaml"),
		pkg.ConfigPath(baseConfig + ".yml"),
	}
}

// CLI is the top-level command-line interface for clog.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Info  cmd.Info  `cmd:"" help:"Write an INFO line."`
	Warn  cmd.Warn  `cmd:"" help:"Write a WARN line."`
	Error cmd.Error `cmd:"" help:"Write an ERROR line."`
	Debug cmd.Debug `cmd:"" help:"Write a DEBUG line."`
	Trace cmd.Trace `cmd:"" help:"Write a TRACE line."`
	Flag  cmd.Flag  `cmd:"" help:"Write a FLAG line with its source location."`

	Demo cmd.Demo `cmd:"" default:"1" help:"Write one line of every severity."`
}

// versionString is printed by --version.
func versionString() string {
	authors := make([]string, 0, len(pkg.Author))
	for _, a := range pkg.Author {
		authors = append(authors, a.String())
	}

	return pkg.Name + " " + pkg.Version + "\n" + strings.Join(authors, "\n")
}

// Run executes the clog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdin, os.Stdout, args...)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdin io.Reader,
	stdout io.Writer,
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		"version": versionString(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logZone/logColor handles those flags
	// during normal parsing, but this early scan also catches the boolean
	// --log-prefix.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(loadYAML, configFiles()...),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithInput(ctx, stdin)

	// Finalize logger configuration with all parsed values, including those
	// resolved from the configuration file.
	cli.Log.start()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx)
}
