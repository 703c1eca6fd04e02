package argument

import (
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

// Set is an ordered, non-owning collection of parameters.
type Set struct {
	params []Parameter
	keys   map[string]bool
	extra  func() bool
}

// NewSet creates an empty parameter set.
func NewSet() *Set {
	return &Set{keys: make(map[string]bool)}
}

// Register appends a parameter. Registering a key twice is a developer error.
func (s *Set) Register(p Parameter) {
	if s.keys == nil {
		s.keys = make(map[string]bool)
	}
	if s.keys[p.Key()] {
		errors.Fatalf("argument %q registered more than once", p.Key())
	}
	s.keys[p.Key()] = true
	s.params = append(s.params, p)
}

// SetExtraValidation installs a cross-parameter consistency check run by Validate.
func (s *Set) SetExtraValidation(fn func() bool) {
	s.extra = fn
}

// Parameters returns the registered parameters in declaration order.
func (s *Set) Parameters() []Parameter {
	return s.params
}

// ParseArgument offers one token to every parameter.
func (s *Set) ParseArgument(a *cmdline.Argument) {
	for _, p := range s.params {
		p.Parse(a)
	}
}

// Parse offers every token to every parameter.
func (s *Set) Parse(args cmdline.Arguments) {
	for _, a := range args {
		s.ParseArgument(a)
	}
}

// Validate requires every parameter and the extra check to hold.
func (s *Set) Validate() bool {
	for _, p := range s.params {
		if !p.Validate() {
			return false
		}
	}
	if s.extra != nil && !s.extra() {
		return false
	}
	return true
}

// Invalid returns the parameters whose current value does not validate.
func (s *Set) Invalid() []Parameter {
	var result []Parameter
	for _, p := range s.params {
		if !p.Validate() {
			result = append(result, p)
		}
	}
	return result
}

// Unparsed returns the parameters that were never set explicitly.
func (s *Set) Unparsed() []Parameter {
	var result []Parameter
	for _, p := range s.params {
		if !p.WasParsed() {
			result = append(result, p)
		}
	}
	return result
}

// Help renders one usage line per parameter, indented with tabs.
func (s *Set) Help(indent int) string {
	var sb strings.Builder
	prefix := strings.Repeat("\t", indent)
	for _, p := range s.params {
		sb.WriteString(prefix)
		sb.WriteString(p.Usage())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Strings renders every parameter as key=value in declaration order.
func (s *Set) Strings() []string {
	result := make([]string, len(s.params))
	for i, p := range s.params {
		result[i] = p.String()
	}
	return result
}

// Keys returns the parameter keys in declaration order.
func Keys(params []Parameter) []string {
	keys := make([]string, len(params))
	for i, p := range params {
		keys[i] = p.Key()
	}
	return keys
}
