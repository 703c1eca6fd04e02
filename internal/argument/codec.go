package argument

import (
	"strings"

	"golang.org/x/text/cases"
)

// EnumCodec maps the values of one enumeration to their command-line names.
type EnumCodec[T comparable] interface {
	// Name identifies the enumeration in diagnostics.
	Name() string
	// Parse returns the value named by s, ignoring case, or the invalid sentinel.
	Parse(s string) T
	// Serialize returns the name of v and whether v is a known value.
	Serialize(v T) (string, bool)
	// Values returns every known value in declaration order.
	Values() []T
	// Invalid returns the sentinel returned for unknown names.
	Invalid() T
}

// EnumEntry pairs a value with its command-line name.
type EnumEntry[T comparable] struct {
	Value T
	Name  string
}

// Table is an EnumCodec backed by a fixed, ordered list of entries.
type Table[T comparable] struct {
	name    string
	invalid T
	entries []EnumEntry[T]
}

// NewTable declares an enumeration codec.
func NewTable[T comparable](name string, invalid T, entries ...EnumEntry[T]) *Table[T] {
	return &Table[T]{name: name, invalid: invalid, entries: entries}
}

func (t *Table[T]) Name() string { return t.name }
func (t *Table[T]) Invalid() T   { return t.invalid }

func (t *Table[T]) Parse(s string) T {
	folded := fold(s)
	for _, e := range t.entries {
		if fold(e.Name) == folded {
			return e.Value
		}
	}
	return t.invalid
}

func (t *Table[T]) Serialize(v T) (string, bool) {
	for _, e := range t.entries {
		if e.Value == v {
			return e.Name, true
		}
	}
	return "", false
}

func (t *Table[T]) Values() []T {
	values := make([]T, len(t.entries))
	for i, e := range t.entries {
		values[i] = e.Value
	}
	return values
}

// Names returns every name in declaration order.
func (t *Table[T]) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func codecNames[T comparable](c EnumCodec[T]) []string {
	values := c.Values()
	names := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := c.Serialize(v); ok {
			names = append(names, name)
		}
	}
	return names
}

func enumHelp(prefix string, names []string, suffix string) string {
	var sb strings.Builder
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte(' ')
	}
	sb.WriteByte('(')
	sb.WriteString(strings.Join(names, " or "))
	sb.WriteString(suffix)
	sb.WriteByte(')')
	return sb.String()
}
