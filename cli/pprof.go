//go:build pprof

package cli

import (
	"context"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/pkg"
)

// pprofTag names the profile output subdirectory.
const pprofTag = "pprof"

var pprofMode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(slices.Sorted(maps.Keys(pprofMode)), ","),
		"pprofDir":      filepath.Join(pkg.CacheDir(), pprofTag),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start(context.Context) (stop func()) {
	mode, ok := pprofMode[f.Mode]
	if !ok {
		return func() {}
	}

	log.Tracef("pprof start: mode=%s dir=%s", f.Mode, f.Dir)

	profiler := profile.Start(mode, profile.ProfilePath(f.Dir), profile.Quiet)

	return func() {
		profiler.Stop()
		log.Tracef("pprof stop: mode=%s dir=%s", f.Mode, f.Dir)
	}
}
