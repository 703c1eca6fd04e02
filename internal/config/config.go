// Package config holds the process-wide configuration of a benchmark run.
//
// The configuration is built once from the command-line tokens, optionally
// completed from a YAML defaults file, and must be loaded before any test
// case runs. It is read-only afterwards.
package config

import (
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/argument"
	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
)

// Configuration is the set of global parameters.
type Configuration struct {
	set *argument.Set

	// Diagnostics
	Help         *argument.BooleanFlag
	Version      *argument.BooleanFlag
	HwInfo       *argument.BooleanFlag
	GenerateDocs *argument.BooleanFlag

	// Backend selection
	OclPlatformIndex *argument.Integer
	OclDeviceIndex   *argument.NonNegativeInteger
	OclUseOOQ        *argument.Boolean
	L0DriverIndex    *argument.NonNegativeInteger
	L0DeviceIndex    *argument.NonNegativeInteger

	// Run control
	Test                     *argument.String
	SubDeviceSelection       *argument.Bitfield[enum.DeviceSelection]
	Csv                      *argument.BooleanFlag
	Verbose                  *argument.BooleanFlag
	InteractivePrints        *argument.BooleanFlag
	Iterations               *argument.PositiveInteger
	WarmupIterations         *argument.NonNegativeInteger
	SelectedApi              *argument.Enum[enum.Api]
	NoIntelExtensions        *argument.BooleanFlag
	DumpCommandLines         *argument.BooleanFlag
	Noop                     *argument.BooleanFlag
	NoHeaders                *argument.BooleanFlag
	NoColumnNames            *argument.BooleanFlag
	DoNotPrintBandwidth      *argument.BooleanFlag
	DumpErrorsImmediately    *argument.Boolean
	ArgFilter                *argument.StringList
	TestFilter               *argument.StringList
	ForceSubmissionProfiling *argument.BooleanFlag
	MarkTimers               *argument.BooleanFlag
	PrintAllResults          *argument.BooleanFlag
	AllowLimitedTests        *argument.BooleanFlag
	Extended                 *argument.BooleanFlag
	SleepFor                 *argument.NonNegativeInteger
	ConfigFile               *argument.String

	// PrintType is derived from Csv, Verbose and Noop after parsing.
	PrintType stats.PrintType
}

// New creates a configuration holding the default values.
func New() *Configuration {
	s := argument.NewSet()
	c := &Configuration{
		set:                      s,
		Help:                     argument.NewBooleanFlag(s, "help", "Shows this message"),
		Version:                  argument.NewBooleanFlag(s, "version", "Shows benchmark version"),
		HwInfo:                   argument.NewBooleanFlag(s, "hwInfo", "Shows available devices"),
		GenerateDocs:             argument.NewBooleanFlag(s, "generateDocs", "Generate .md file describing available tests"),
		OclPlatformIndex:         argument.NewInteger(s, "oclPlatformIndex", "OpenCL platform index"),
		OclDeviceIndex:           argument.NewNonNegativeInteger(s, "oclDeviceIndex", "OpenCL device index inside the platform"),
		OclUseOOQ:                argument.NewBoolean(s, "oclUseOOQ", "Use out of order queue if it is supported"),
		L0DriverIndex:            argument.NewNonNegativeInteger(s, "l0DriverIndex", "LevelZero driver index"),
		L0DeviceIndex:            argument.NewNonNegativeInteger(s, "l0DeviceIndex", "LevelZero device index inside the driver"),
		Test:                     argument.NewString(s, "test", "Selects particular test for execution. All arguments of the test must be provided"),
		SubDeviceSelection:       argument.NewBitfield[enum.DeviceSelection](s, "subDeviceSelection", "Device to be used in the benchmarks. Might be ignored by some specific tests", enum.DeviceSelectionCodec, false),
		Csv:                      argument.NewBooleanFlag(s, "csv", "dump results in CSV format for easy imports to spreadsheets"),
		Verbose:                  argument.NewBooleanFlag(s, "verbose", "dump results from all iterations"),
		InteractivePrints:        argument.NewBooleanFlag(s, "interactivePrints", "display test name before running it. May cause unexpected results when redirecting output to files"),
		Iterations:               argument.NewPositiveInteger(s, "iterations", "select how many times each test will be run"),
		WarmupIterations:         argument.NewNonNegativeInteger(s, "warmupIterations", "select how many leading iterations are excluded from statistics"),
		SelectedApi:              argument.NewEnum[enum.Api](s, "api", "Compute API to be used", enum.ApiCodec),
		NoIntelExtensions:        argument.NewBooleanFlag(s, "no-intel-extensions", "do not run benchmark requiring Intel specific extensions"),
		DumpCommandLines:         argument.NewBooleanFlag(s, "dumpCommandLines", "output commandline arguments to run the each test"),
		Noop:                     argument.NewBooleanFlag(s, "noop", "do not run any tests, only print their names and parameters"),
		NoHeaders:                argument.NewBooleanFlag(s, "noHeaders", "Do not print any informational messages at the top of the output"),
		NoColumnNames:            argument.NewBooleanFlag(s, "noColumnNames", "Do not print column names at the top of the output"),
		DoNotPrintBandwidth:      argument.NewBooleanFlag(s, "doNotPrintBandwidth", "Make every results that are normally in [GB/s] to be printed in [us]"),
		DumpErrorsImmediately:    argument.NewBoolean(s, "dumpErrorsImmediately", "print errors to stdout immediately after they happen, not at the end of the run"),
		ArgFilter:                argument.NewStringList(s, "argFilter", "filter tests by their arguments"),
		TestFilter:               argument.NewStringList(s, "testFilter", "filter tests by their names"),
		ForceSubmissionProfiling: argument.NewBooleanFlag(s, "forceSubmissionProfiling", "Overrides profiling to return submission time instead of workload time"),
		MarkTimers:               argument.NewBooleanFlag(s, "markTimers", "Provides prints around Timer Start & End"),
		PrintAllResults:          argument.NewBooleanFlag(s, "printAllResults", "print a status line for every test, including the skipped ones"),
		AllowLimitedTests:        argument.NewBooleanFlag(s, "allowLimitedTests", "run the reduced LIMITED instantiations instead of the regular ones"),
		Extended:                 argument.NewBooleanFlag(s, "extended", "also run the extended instantiations with the full parameter space"),
		SleepFor:                 argument.NewNonNegativeInteger(s, "sleepFor", "sleep for the given number of milliseconds after each test"),
		ConfigFile:               argument.NewString(s, "configFile", "YAML file with default values of global parameters"),
	}

	c.OclPlatformIndex.Set(-1)
	c.OclUseOOQ.Set(true)
	c.DumpErrorsImmediately.Set(false)
	c.SubDeviceSelection.Set(enum.DeviceRoot)
	c.Iterations.Set(10)
	c.SelectedApi.Set(enum.ApiAll)

	s.SetExtraValidation(func() bool {
		return !(c.Csv.Get() && c.Verbose.Get())
	})
	return c
}

// Parameters returns the global parameters in declaration order.
func (c *Configuration) Parameters() *argument.Set {
	return c.set
}

// Parse consumes the tokens naming global parameters and validates the result.
func (c *Configuration) Parse(args cmdline.Arguments) error {
	c.set.Parse(args)

	if path := c.ConfigFile.Get(); path != "" {
		defaults, err := LoadFile(path, args)
		if err != nil {
			return err
		}
		c.set.Parse(defaults)
		if unprocessed := defaults.Unprocessed(); len(unprocessed) > 0 {
			return errors.Configf("%s: unsupported keys: %s", path, strings.Join(unprocessed.Keys(), ", "))
		}
	}

	if !c.set.Validate() {
		invalid := argument.Keys(c.set.Invalid())
		if len(invalid) == 0 {
			return errors.Config("csv and verbose output cannot be combined")
		}
		return errors.Configf("invalid value of global arguments: %s", strings.Join(invalid, ", "))
	}

	c.PrintType = stats.PrintDefault
	if c.Csv.Get() {
		c.PrintType = stats.PrintCsv
	}
	if c.Verbose.Get() {
		c.PrintType = stats.PrintDefaultWithVerbose
	}
	if c.Noop.Get() {
		c.PrintType = stats.PrintNoop
	}
	return nil
}

// IsNoopRun reports whether tests are only listed, not measured.
func (c *Configuration) IsNoopRun() bool {
	return c.Noop.Get()
}

// HelpText renders the usage lines of every global parameter.
func (c *Configuration) HelpText(indent int) string {
	return c.set.Help(indent)
}

var instance *Configuration

// Load builds the process-wide configuration from the command-line tokens.
func Load(args cmdline.Arguments) (*Configuration, error) {
	if instance != nil {
		errors.Warnf("configuration parsed multiple times")
	}
	c := New()
	if err := c.Parse(args); err != nil {
		instance = nil
		return nil, err
	}
	instance = c
	return c, nil
}

// Get returns the loaded configuration. Calling it before Load is a developer error.
func Get() *Configuration {
	if instance == nil {
		errors.Fatalf("configuration was not parsed")
	}
	return instance
}

// Reset forgets the loaded configuration.
func Reset() {
	instance = nil
}
