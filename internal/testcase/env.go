package testcase

import (
	"time"

	"github.com/AndreyAkinshin/gpubench/internal/config"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/output"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
)

// Env is everything a test-case run reads besides its own parameters.
type Env struct {
	Config          *config.Configuration
	Out             *output.Writer
	SupportedApis   enum.ApiSet
	NameColumnWidth int
	Registry        *Registry

	// Sleep pauses between successful runs. Defaults to time.Sleep.
	Sleep func(time.Duration)

	maxNameWidth       int
	warnedUnregistered bool
}

// NewEnv creates an environment bound to a loaded configuration.
func NewEnv(cfg *config.Configuration, out *output.Writer, supported enum.ApiSet, nameColumnWidth int) *Env {
	if nameColumnWidth <= 0 {
		nameColumnWidth = stats.DefaultNameColumnWidth
	}
	return &Env{
		Config:          cfg,
		Out:             out,
		SupportedApis:   supported,
		NameColumnWidth: nameColumnWidth,
		Sleep:           time.Sleep,
	}
}

func (e *Env) sleep(d time.Duration) {
	if e.Sleep == nil {
		time.Sleep(d)
		return
	}
	e.Sleep(d)
}

func (e *Env) statistics(iterations, warmup int) *stats.Statistics {
	return stats.New(stats.Options{
		Iterations:          iterations,
		Warmup:              warmup,
		PrintType:           e.Config.PrintType,
		DoNotPrintBandwidth: e.Config.DoNotPrintBandwidth.Get(),
		NameColumnWidth:     e.NameColumnWidth,
	}, e.Out.Out())
}

// warnNameWidth reports, once per new maximum, a name wider than the name column.
func (e *Env) warnNameWidth(name string) {
	if e.maxNameWidth == 0 {
		e.maxNameWidth = e.NameColumnWidth
	}
	if len(name) > e.maxNameWidth && e.Config.Verbose.Get() {
		e.maxNameWidth = len(name)
		e.Out.Warning("current TestCase column width of %d is too small. Consider changing it to %d. "+
			"This is an issue in the benchmark which may cause the output to appear weird, but does not break any functionality.",
			e.NameColumnWidth, e.maxNameWidth)
	}
}

func (e *Env) warnUnregistered(name string) {
	if e.Registry == nil || e.warnedUnregistered {
		return
	}
	if _, ok := e.Registry.Lookup(name); ok {
		return
	}
	e.warnedUnregistered = true
	e.Out.Warning("%q is not added to the test map. This is an issue in the benchmark causing single-test mode to not work.", name)
}
