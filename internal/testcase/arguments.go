package testcase

import (
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/argument"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
)

// Arguments carries the fields every benchmark parameter set shares. Embed it
// in a scenario's argument struct and register the scenario's own parameters
// into Set().
//
// Api and the run-control fields are plain fields: they are assigned by the
// engine, never parsed from the command line.
type Arguments struct {
	set *argument.Set

	Api               enum.Api
	Iterations        int
	WarmupIterations  int
	NoIntelExtensions bool
	Noop              bool
	SingleTestMode    bool
}

// ArgumentSet is implemented by every struct embedding Arguments.
type ArgumentSet interface {
	Base() *Arguments
}

// Base returns the shared fields.
func (a *Arguments) Base() *Arguments { return a }

// Set returns the scenario's parameters, creating the set on first use.
func (a *Arguments) Set() *argument.Set {
	if a.set == nil {
		a.set = argument.NewSet()
	}
	return a.set
}

// Parameters returns the scenario's parameters in declaration order.
func (a *Arguments) Parameters() []argument.Parameter {
	return a.Set().Parameters()
}

// Validate checks every parameter and the cross-parameter rule.
func (a *Arguments) Validate() bool {
	return a.Set().Validate()
}

// CurrentConfig renders the parameters separated by spaces, either as
// key=value pairs or as command-line tokens.
func (a *Arguments) CurrentConfig(commandLine bool) string {
	pairs := a.Set().Strings()
	if commandLine {
		for i, p := range pairs {
			pairs[i] = "--" + p
		}
	}
	return strings.Join(pairs, " ")
}
