// Package argument implements typed, self-parsing and self-validating parameters.
//
// A Parameter is declared as a field of some owning structure and registered
// into a Set at construction. The Set does not own its parameters; it only
// keeps them in declaration order so it can parse, validate and describe them
// in bulk.
package argument

import (
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

// Parameter is a single named configuration value.
type Parameter interface {
	// Key returns the command-line key of the parameter.
	Key() string
	// Help returns the descriptive help text, including variant suffixes.
	Help() string
	// Usage returns the help line shown by --help.
	Usage() string
	// Parse consumes the token when its key matches and is a no-op otherwise.
	Parse(a *cmdline.Argument)
	// Validate reports whether the current value is legal. It has no side effects.
	Validate() bool
	// ValueString renders the canonical form of the value.
	ValueString() string
	// String renders key=value.
	String() string
	// WasParsed reports whether the value was set explicitly.
	WasParsed() bool
}

type base struct {
	key    string
	help   string
	parsed bool
}

func (b *base) Key() string     { return b.key }
func (b *base) Help() string    { return b.help }
func (b *base) WasParsed() bool { return b.parsed }

func (b *base) Usage() string {
	if b.help == "" {
		return "--" + b.key
	}
	return "--" + b.key + " - " + b.help
}

func (b *base) markAsParsed() { b.parsed = true }

// parse applies the variant parser when the token belongs to this parameter.
func (b *base) parse(a *cmdline.Argument, parseValue func(string)) {
	if !a.IsKeyEqualTo(b.key) {
		return
	}
	a.MarkProcessed()
	parseValue(a.Value)
	b.parsed = true
}

func formatKeyValue(key, value string) string {
	return key + "=" + value
}

// atoi converts the leading decimal integer of s, yielding 0 when there is none.
func atoi(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
