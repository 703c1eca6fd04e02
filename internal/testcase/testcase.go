// Package testcase runs benchmark scenarios.
//
// A scenario is a Benchmark bound to a parameter struct embedding Arguments.
// Native implementations are attached per compute API with Implement and
// receive the validated parameters plus a stats.Sink. Every run walks the same
// sequence of gates (filters, limited and extended gating, API selection, implementation
// lookup, extension gating, validation) before the implementation is called,
// and the first gate that fails decides the Result.
package testcase

import (
	"strings"
	"time"

	"github.com/AndreyAkinshin/gpubench/internal/argument"
	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
)

// Case is the type-erased view of a Benchmark held by the Registry.
type Case interface {
	Name() string
	Help() string
	HelpParameters() string
	Parameters() []argument.Parameter
	IsApiImplemented(api enum.Api) bool
	ApisWithImplementation() []enum.Api
	Instances() []Instance
	RunFromCommandLine(env *Env, args cmdline.Arguments) error
}

// Func is a native implementation of a scenario for one API.
type Func[A ArgumentSet] func(args A, sink stats.Sink) Result

type implementation[A ArgumentSet] struct {
	fn                      Func[A]
	requiresIntelExtensions bool
}

type instantiation[A ArgumentSet] struct {
	prefix   string
	combos   []func(A)
	extended bool
}

// Benchmark is a scenario with its implementations and predefined configurations.
type Benchmark[A ArgumentSet] struct {
	name           string
	help           string
	newArgs        func() A
	impls          map[enum.Api]implementation[A]
	instantiations []instantiation[A]
}

// New declares a scenario. newArgs must return a fresh parameter struct on every call.
func New[A ArgumentSet](name, help string, newArgs func() A) *Benchmark[A] {
	if name == "" {
		errors.Fatalf("test case name must not be empty")
	}
	return &Benchmark[A]{
		name:    name,
		help:    help,
		newArgs: newArgs,
		impls:   make(map[enum.Api]implementation[A]),
	}
}

func (b *Benchmark[A]) Name() string { return b.name }
func (b *Benchmark[A]) Help() string { return b.help }

// Parameters returns the parameters of a fresh parameter struct.
func (b *Benchmark[A]) Parameters() []argument.Parameter {
	return b.newArgs().Base().Parameters()
}

// HelpParameters renders the usage lines of the scenario's parameters.
func (b *Benchmark[A]) HelpParameters() string {
	return b.newArgs().Base().Set().Help(2)
}

// Implement attaches the native implementation for api.
func (b *Benchmark[A]) Implement(api enum.Api, fn Func[A]) *Benchmark[A] {
	return b.implement(api, fn, false)
}

// ImplementWithIntelExtensions attaches an implementation that is skipped when
// vendor extensions are disabled.
func (b *Benchmark[A]) ImplementWithIntelExtensions(api enum.Api, fn Func[A]) *Benchmark[A] {
	return b.implement(api, fn, true)
}

func (b *Benchmark[A]) implement(api enum.Api, fn Func[A], requiresIntelExtensions bool) *Benchmark[A] {
	if api < enum.ApiFirst || api > enum.ApiLast {
		errors.Fatalf("cannot implement %s for API %q", b.name, api)
	}
	if fn == nil {
		errors.Fatalf("nil implementation of %s for API %q", b.name, api)
	}
	if _, exists := b.impls[api]; exists {
		errors.Fatalf("%s is already implemented for API %q", b.name, api)
	}
	b.impls[api] = implementation[A]{fn: fn, requiresIntelExtensions: requiresIntelExtensions}
	return b
}

func (b *Benchmark[A]) IsApiImplemented(api enum.Api) bool {
	_, ok := b.impls[api]
	return ok
}

// ApisWithImplementation lists the implemented APIs in iteration order.
func (b *Benchmark[A]) ApisWithImplementation() []enum.Api {
	var apis []enum.Api
	for _, api := range enum.ConcreteApis() {
		if b.IsApiImplemented(api) {
			apis = append(apis, api)
		}
	}
	return apis
}

// Instantiate adds predefined configurations run in all-tests mode under the
// suite prefix. A prefix containing LIMITED marks reduced configurations that
// only run with --allowLimitedTests.
func (b *Benchmark[A]) Instantiate(prefix string, combos []func(A)) *Benchmark[A] {
	if prefix == "" {
		errors.Fatalf("instantiation of %s needs a prefix", b.name)
	}
	b.instantiations = append(b.instantiations, instantiation[A]{prefix: prefix, combos: combos})
	return b
}

// InstantiateExtended adds configurations that only run with --extended.
func (b *Benchmark[A]) InstantiateExtended(prefix string, combos []func(A)) *Benchmark[A] {
	b.Instantiate(prefix, combos)
	b.instantiations[len(b.instantiations)-1].extended = true
	return b
}

// Instances expands every instantiation into runnable instances.
func (b *Benchmark[A]) Instances() []Instance {
	var instances []Instance
	for _, inst := range b.instantiations {
		suite, limited := suiteName(inst.prefix, b.name+"Test")
		g := group{limited: limited, extended: inst.extended}
		for i, assign := range inst.combos {
			instances = append(instances, Instance{
				Suite:    suite,
				Index:    i,
				Limited:  limited,
				Extended: inst.extended,
				run: func(env *Env) Result {
					args := b.newArgs()
					assign(args)
					return b.run(env, args, g)
				},
			})
		}
	}
	return instances
}

// RunFromCommandLine runs the scenario once per API with parameters taken
// from args. Every token must be consumed and every parameter must be given.
func (b *Benchmark[A]) RunFromCommandLine(env *Env, args cmdline.Arguments) error {
	a := b.newArgs()
	base := a.Base()
	base.SingleTestMode = true
	base.Set().Parse(args)

	var problems []string
	if unprocessed := args.Unprocessed(); len(unprocessed) > 0 {
		problems = append(problems, "Following command line arguments were not processed: "+strings.Join(unprocessed.Keys(), ", "))
	}
	if unparsed := base.Set().Unparsed(); len(unparsed) > 0 {
		problems = append(problems, "Following test arguments were not set: "+strings.Join(argument.Keys(unparsed), ", "))
	}
	if len(problems) > 0 {
		for _, p := range problems {
			env.Out.Errorln("%s", p)
		}
		return errors.CommandLine(strings.Join(problems, "; "))
	}

	if !env.Config.NoColumnNames.Get() {
		stats.PrintHeader(env.Out.Out(), env.Config.PrintType, env.NameColumnWidth)
	}
	for _, api := range enum.ConcreteApis() {
		base.Api = api
		b.run(env, a, group{})
	}
	return nil
}

// NameWithConfig renders the scenario name with its API and parameters.
func (b *Benchmark[A]) NameWithConfig(args A, commandLine bool) string {
	base := args.Base()
	var sb strings.Builder
	if commandLine {
		sb.WriteString("--test=" + b.name + " --api=" + base.Api.String())
	} else {
		sb.WriteString(b.name + "(api=" + base.Api.String())
	}
	if cfg := base.CurrentConfig(commandLine); cfg != "" {
		sb.WriteString(" " + cfg)
	}
	if !commandLine {
		sb.WriteString(")")
	}
	return sb.String()
}

func (b *Benchmark[A]) run(env *Env, args A, g group) Result {
	cfg := env.Config
	base := args.Base()
	base.Iterations = int(cfg.Iterations.Get())
	base.WarmupIterations = int(cfg.WarmupIterations.Get())
	base.NoIntelExtensions = cfg.NoIntelExtensions.Get()
	base.Noop = cfg.IsNoopRun()

	name := b.NameWithConfig(args, cfg.DumpCommandLines.Get())
	st := env.statistics(base.Iterations, base.WarmupIterations)

	result := b.runImpl(env, st, args, name, g)
	switch result {
	case Success:
		if !st.IsFull() {
			errors.Warnf("test did not generate as many values as expected")
		}
		st.Print(name)
		if ms := cfg.SleepFor.Get(); ms > 0 {
			env.sleep(time.Duration(ms) * time.Millisecond)
		}
	case Nooped:
		st.Print(name)
	default:
		if result.Info().WasSkipped && !st.IsEmpty() {
			errors.Warnf("test was skipped but generated some values")
		}
		if result.ShouldPrint(cfg.PrintAllResults.Get(), base.SingleTestMode) {
			st.PrintStatus(name, result.Info().Message)
		}
	}
	return result
}

func (b *Benchmark[A]) runImpl(env *Env, st *stats.Statistics, args A, name string, g group) Result {
	cfg := env.Config
	base := args.Base()

	if !matchesTestFilters(b.name, cfg.TestFilter.Get()) {
		return FilteredOut
	}
	if !matchesArgFilters(base.Parameters(), cfg.ArgFilter.Get()) {
		return FilteredOut
	}
	if !base.SingleTestMode && g.limited != cfg.AllowLimitedTests.Get() {
		return FilteredOut
	}
	if !base.SingleTestMode && g.extended && !cfg.Extended.Get() {
		return FilteredOut
	}

	selected := cfg.SelectedApi.Get()
	if base.Api != selected && selected != enum.ApiAll {
		return SkippedApi
	}
	if !env.SupportedApis.Contains(base.Api) {
		return UnsupportedApi
	}

	impl, ok := b.impls[base.Api]
	if !ok {
		return NoImplementation
	}
	if base.NoIntelExtensions && impl.requiresIntelExtensions {
		return IntelExtensionsRequired
	}
	if !base.Validate() {
		return InvalidArgs
	}

	env.warnUnregistered(b.name)
	if !cfg.DumpCommandLines.Get() && !base.SingleTestMode {
		env.warnNameWidth(name)
	}

	interactive := cfg.InteractivePrints.Get()
	if interactive {
		st.PrintBeforeTest(name)
	}
	result := impl.fn(args, st)
	if interactive {
		st.ClearLineAfterTest()
	}
	return result
}
