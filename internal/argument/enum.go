package argument

import (
	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

// Enum holds one value of the enumeration described by its codec.
type Enum[T comparable] struct {
	base
	codec EnumCodec[T]
	value T
}

// NewEnum declares an enumeration parameter in s. The help text lists every name.
func NewEnum[T comparable](s *Set, key, helpPrefix string, codec EnumCodec[T]) *Enum[T] {
	p := &Enum[T]{
		base:  base{key: key, help: enumHelp(helpPrefix, codecNames(codec), "")},
		codec: codec,
		value: codec.Invalid(),
	}
	s.Register(p)
	return p
}

func (p *Enum[T]) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *Enum[T]) String() string            { return formatKeyValue(p.key, p.ValueString()) }
func (p *Enum[T]) parseValue(s string)       { p.value = p.codec.Parse(s) }

func (p *Enum[T]) Validate() bool {
	for _, v := range p.codec.Values() {
		if v == p.value {
			return true
		}
	}
	return false
}

// ValueString returns the name of the value, or "unknown" for values outside the codec.
func (p *Enum[T]) ValueString() string {
	if name, ok := p.codec.Serialize(p.value); ok {
		return name
	}
	return "unknown"
}

// Get returns the current value.
func (p *Enum[T]) Get() T { return p.value }

// Set assigns the value and marks it as explicitly set.
func (p *Enum[T]) Set(v T) {
	p.value = v
	p.markAsParsed()
}
