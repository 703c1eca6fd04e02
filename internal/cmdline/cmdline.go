// Package cmdline splits raw command-line tokens into key/value pairs.
//
// A token is valid when it starts with "--" and is not exactly "--". The part
// after the prefix up to the first '=' is the key, the rest is the value. A
// token without '=' is a flag with an empty value.
package cmdline

import (
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

// Argument is one raw command-line token.
type Argument struct {
	Key       string
	Value     string
	valid     bool
	processed bool
}

// NewArgument splits a single token. The result is marked invalid when the
// token does not follow the --key[=value] syntax.
func NewArgument(token string) *Argument {
	a := &Argument{}
	a.Key, a.Value, a.valid = splitToken(token)
	return a
}

func splitToken(token string) (key, value string, ok bool) {
	if !strings.HasPrefix(token, "--") || token == "--" {
		return "", "", false
	}
	body := token[2:]
	if i := strings.IndexByte(body, '='); i >= 0 {
		return body[:i], body[i+1:], true
	}
	return body, "", true
}

// Valid reports whether the token followed the --key[=value] syntax.
func (a *Argument) Valid() bool { return a.valid }

// Processed reports whether some parameter consumed the token.
func (a *Argument) Processed() bool { return a.processed }

// MarkProcessed records that a parameter consumed the token.
func (a *Argument) MarkProcessed() {
	if !a.valid {
		errors.Warnf("invalid argument was marked as processed")
	}
	if a.processed {
		errors.Warnf("argument %q processed multiple times", a.Key)
	}
	a.processed = true
}

// IsKeyEqualTo reports whether the token is valid and carries the given key.
func (a *Argument) IsKeyEqualTo(key string) bool {
	return a.valid && a.Key == key
}

// String renders the token back to its command-line form.
func (a *Argument) String() string {
	if a.Value == "" {
		return "--" + a.Key
	}
	return "--" + a.Key + "=" + a.Value
}

// Arguments is the ordered token vector of one invocation.
type Arguments []*Argument

// Parse converts the whole argument vector. It fails on the first malformed
// token or the first key given twice, returning no arguments at all.
func Parse(args []string) (Arguments, error) {
	seen := make(map[string]bool, len(args))
	result := make(Arguments, 0, len(args))
	for _, token := range args {
		a := NewArgument(token)
		if !a.valid {
			return nil, errors.CommandLinef("Argument %q is ill-formed. All arguments have to follow syntax: --<key>[=value]", token)
		}
		if seen[a.Key] {
			return nil, errors.CommandLinef("Argument with a key %q is provided more than once", a.Key)
		}
		seen[a.Key] = true
		result = append(result, a)
	}
	return result, nil
}

// Unprocessed returns the tokens no parameter has consumed.
func (args Arguments) Unprocessed() Arguments {
	var result Arguments
	for _, a := range args {
		if !a.processed {
			result = append(result, a)
		}
	}
	return result
}

// Keys returns the keys of the tokens in order.
func (args Arguments) Keys() []string {
	keys := make([]string, len(args))
	for i, a := range args {
		keys[i] = a.Key
	}
	return keys
}

// Find returns the token carrying key, or nil.
func (args Arguments) Find(key string) *Argument {
	for _, a := range args {
		if a.IsKeyEqualTo(key) {
			return a
		}
	}
	return nil
}

// Has reports whether a token with key is present.
func (args Arguments) Has(key string) bool {
	return args.Find(key) != nil
}
