package testcase

import (
	"sort"

	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
)

// Registry holds every scenario of a benchmark binary. It is filled by an
// explicit registration routine at startup and read-only afterwards.
type Registry struct {
	cases map[string]Case
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cases: make(map[string]Case)}
}

// Register adds a scenario. Registering a name twice is a developer error.
func (r *Registry) Register(c Case) {
	if _, exists := r.cases[c.Name()]; exists {
		errors.Fatalf("test case %q registered more than once", c.Name())
	}
	r.cases[c.Name()] = c
}

// Lookup returns the scenario with the given name.
func (r *Registry) Lookup(name string) (Case, bool) {
	c, ok := r.cases[name]
	return c, ok
}

// Names returns all scenario names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cases))
	for name := range r.cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all scenarios sorted by name.
func (r *Registry) All() []Case {
	names := r.Names()
	result := make([]Case, len(names))
	for i, name := range names {
		result[i] = r.cases[name]
	}
	return result
}

// Len returns the number of registered scenarios.
func (r *Registry) Len() int { return len(r.cases) }

// Failure is an instance whose run ended in a run-time failure.
type Failure struct {
	Name   string
	Result Result
}

// RunAll runs every instance selected by filter, scenario by scenario in name
// order, and returns the failed ones.
func (r *Registry) RunAll(env *Env, filter InstanceFilter) []Failure {
	cfg := env.Config
	if env.Registry == nil {
		env.Registry = r
	}
	if !cfg.NoHeaders.Get() && cfg.PrintType != stats.PrintCsv {
		env.Out.Println("Running %d iterations of each benchmark\n", cfg.Iterations.Get())
	}
	if !cfg.NoColumnNames.Get() {
		stats.PrintHeader(env.Out.Out(), cfg.PrintType, env.NameColumnWidth)
	}

	var failures, pending []Failure
	for _, c := range r.All() {
		for _, inst := range c.Instances() {
			if !filter.Matches(inst.Name()) {
				continue
			}
			if result := inst.Run(env); result.Failed() {
				f := Failure{Name: inst.Name(), Result: result}
				failures = append(failures, f)
				pending = append(pending, f)
			}
			if cfg.DumpErrorsImmediately.Get() {
				dumpFailures(env, pending)
				pending = nil
			}
		}
	}
	dumpFailures(env, pending)
	return failures
}

func dumpFailures(env *Env, failures []Failure) {
	if len(failures) == 0 {
		return
	}
	env.Out.Println("")
	for _, f := range failures {
		env.Out.Println("[  FAILED  ] %s\n%s\n", f.Name, f.Result.Info().Message)
	}
}
