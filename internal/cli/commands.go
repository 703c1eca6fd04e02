package cli

import (
	"context"
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
	"github.com/AndreyAkinshin/gpubench/internal/config"
	"github.com/AndreyAkinshin/gpubench/internal/docs"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/internal/hwinfo"
	"github.com/AndreyAkinshin/gpubench/internal/output"
	"github.com/AndreyAkinshin/gpubench/internal/testcase"
)

var out = output.New()

// collectHwInfo is replaced in tests.
var collectHwInfo = hwinfo.Collect

const instanceFilterKey = "gtest_filter"

func executeSingleTest(env *testcase.Env, registry *testcase.Registry, name string, tokens cmdline.Arguments) int {
	tc, ok := registry.Lookup(name)
	if !ok {
		out.Errorln("Unknown test case")
		return errors.GetExitCode(errors.NotFound("test case", name))
	}
	if err := tc.RunFromCommandLine(env, tokens); err != nil {
		out.Errorln("Error parsing command line")
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

func executeAllTests(env *testcase.Env, registry *testcase.Registry, tokens cmdline.Arguments) int {
	filter := testcase.ParseInstanceFilter("")
	for _, a := range tokens {
		if !strings.HasPrefix(a.Key, "gtest_") {
			continue
		}
		a.MarkProcessed()
		if a.Key == instanceFilterKey {
			filter = testcase.ParseInstanceFilter(a.Value)
		}
	}

	if unprocessed := tokens.Unprocessed(); len(unprocessed) > 0 {
		out.Errorln("Following command line arguments were not processed: %s", strings.Join(unprocessed.Keys(), ", "))
		return errors.ExitFailure
	}

	if failures := registry.RunAll(env, filter); len(failures) > 0 {
		return errors.ExitFailure
	}
	return errors.ExitSuccess
}

func generateDocs(info BenchmarkInfo, registry *testcase.Registry) int {
	gen := docs.NewGenerator(info.Name, info.Description, registry)
	if err := gen.Generate(out.Out()); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

func printHwInfo() {
	info := collectHwInfo(context.Background())
	rows := [][]string{
		{"os", info.OS + "/" + info.Arch},
		{"cpu", info.CPUModel},
	}
	if info.LogicalCores > 0 {
		rows = append(rows, []string{"cores", info.CoresString()})
	}
	if info.TotalMemory > 0 {
		rows = append(rows, []string{"memory", info.MemoryString()})
	}
	if len(info.Features) > 0 {
		rows = append(rows, []string{"features", strings.Join(info.Features, " ")})
	}
	out.Table([]string{"Host", "Value"}, rows)
}

func printVersion(info BenchmarkInfo, enableWarning bool, prefix string) int {
	if info.Version != "" {
		out.Println("%s%s", prefix, info.Version)
		return errors.ExitSuccess
	}
	if enableWarning {
		out.Errorln("Unknown version. Build with -ldflags \"-X main.version=<version>\" to include it in the binary.")
		return errors.ExitFailure
	}
	return errors.ExitSuccess
}

func printHeader(info BenchmarkInfo) {
	for _, line := range collectHwInfo(context.Background()).Lines() {
		out.Println("%s", line)
	}
	if apis := supportedApiNames(info.SupportedApis); apis != "" {
		out.Println("Supported compute APIs: %s", apis)
	}
	printVersion(info, false, "Benchmark version: ")
}

func printHelp(info BenchmarkInfo, registry *testcase.Registry, cfg *config.Configuration) {
	filename := info.Filename
	if filename == "" {
		filename = info.Name
	}

	out.HelpTitle(info.Description)
	out.Println("")
	out.Println("The benchmark works in two modes - all-tests mode and single-test mode. They are further described below. " +
		"Global parameters applicable for both modes:")
	out.Print("%s", cfg.HelpText(1))
	out.Println("")
	out.Println("First mode is the default and it runs all available benchmarks in many predefined configurations. " +
		"Predefined configurations can be selected with --gtest_filter, if necessary.")
	out.Println("")
	out.Println("Second mode runs one specific benchmark with custom parameter values. Running benchmarks in this fashion requires " +
		"using --test argument, along with benchmark-specific parameters. All parameters have to be specified, there are no " +
		"default values.")
	out.Println("")
	out.HelpSection("Example invocations:")
	examples := []struct{ args, description string }{
		{"", "runs all possible tests"},
		{"--api=ocl", "runs all possible OpenCL tests"},
		{"--iterations=100 --csv", "runs all possible tests with 100 iterations and dumps results as CSV"},
		{"--gtest_filter=<pattern>", "runs all tests matching a wildcard pattern"},
		{"--gtest_filter=*TestName*", "runs a test named \"TestName\" in all predefined configurations"},
		{"--test=TestName --someParam=1 --otherParam=30", "runs a test named \"TestName\" with specified parameters"},
	}
	width := 0
	for _, e := range examples {
		if n := len(filename) + 1 + len(e.args); n > width {
			width = n
		}
	}
	for _, e := range examples {
		out.HelpExample(strings.TrimSpace(filename+" "+e.args), e.description, width)
	}
	out.Println("")
	out.HelpSection("All available test cases with their parameters:")

	for _, tc := range registry.All() {
		apis := tc.ApisWithImplementation()
		if len(apis) == 0 {
			continue
		}
		names := make([]string, len(apis))
		for i, api := range apis {
			names[i] = api.FriendlyName()
		}
		out.Print("\t%s - %s Supported compute APIs: %s.", tc.Name(), tc.Help(), strings.Join(names, ", "))
		if params := tc.HelpParameters(); params != "" {
			out.Print(" Parameters:\n%s", params)
		} else {
			out.Print("\n")
		}
		out.Print("\n")
	}
}

// supportedApiNames renders the APIs of a build for the header.
func supportedApiNames(set enum.ApiSet) string {
	var names []string
	for _, api := range enum.ConcreteApis() {
		if set.Contains(api) {
			names = append(names, api.FriendlyName())
		}
	}
	return strings.Join(names, ", ")
}
