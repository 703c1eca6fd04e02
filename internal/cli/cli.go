// Package cli provides the command-line driver shared by every benchmark binary.
package cli

import (
	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
	"github.com/AndreyAkinshin/gpubench/internal/config"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
	"github.com/AndreyAkinshin/gpubench/internal/testcase"
)

// BenchmarkInfo describes one benchmark binary.
type BenchmarkInfo struct {
	Name        string
	Description string
	// Filename is the executable name shown in the help examples.
	Filename string
	// NameColumnWidth is the width of the TestCase column. Zero selects the default.
	NameColumnWidth int
	// Version is empty when the binary was built without version information.
	Version string
	// SupportedApis lists the compute APIs this build can run.
	SupportedApis enum.ApiSet
}

func (info BenchmarkInfo) nameColumnWidth() int {
	if info.NameColumnWidth <= 0 {
		return stats.DefaultNameColumnWidth
	}
	return info.NameColumnWidth
}

// Run executes the benchmark with the given arguments and returns an exit code.
// A developer error raised anywhere below is reported and yields ExitFatal.
func Run(info BenchmarkInfo, registry *testcase.Registry, args []string) (code int) {
	defer config.Reset()
	defer func() {
		if err := errors.Recover(recover()); err != nil {
			out.ErrorPrefix("%v", err)
			code = errors.GetExitCode(err)
		}
	}()
	return run(info, registry, args)
}

func run(info BenchmarkInfo, registry *testcase.Registry, args []string) int {
	tokens, err := cmdline.Parse(args)
	if err != nil {
		out.Errorln("%v", err)
		return errors.GetExitCode(err)
	}

	cfg, err := config.Load(tokens)
	if err != nil {
		out.Errorln("%v", err)
		out.Errorln("Error parsing command line")
		return errors.GetExitCode(err)
	}

	switch {
	case cfg.GenerateDocs.Get():
		return generateDocs(info, registry)
	case cfg.HwInfo.Get():
		printHwInfo()
		return errors.ExitSuccess
	case cfg.Help.Get():
		printHelp(info, registry, cfg)
		return errors.ExitSuccess
	case cfg.Version.Get():
		return printVersion(info, true, "")
	}

	if !cfg.NoHeaders.Get() {
		printHeader(info)
	}

	env := testcase.NewEnv(cfg, out, info.SupportedApis, info.nameColumnWidth())
	env.Registry = registry
	if name := cfg.Test.Get(); name != "" {
		return executeSingleTest(env, registry, name, tokens)
	}
	return executeAllTests(env, registry, tokens)
}
