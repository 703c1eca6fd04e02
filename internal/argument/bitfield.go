package argument

import (
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

// BitfieldSeparator joins flag names inside one bit-field value.
const BitfieldSeparator = ":"

// Flags is the set of integer types usable as bit fields.
type Flags interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~int
}

// Bitfield holds an OR-ed combination of enumeration flags.
type Bitfield[T Flags] struct {
	base
	codec     EnumCodec[T]
	allowZero bool
	extra     func(T) bool
	value     T
}

// NewBitfield declares a bit-field parameter in s. Unless allowZero is set, at
// least one known flag must be present for the value to validate.
func NewBitfield[T Flags](s *Set, key, helpPrefix string, codec EnumCodec[T], allowZero bool) *Bitfield[T] {
	p := &Bitfield[T]{
		base:      base{key: key, help: enumHelp(helpPrefix, codecNames(codec), " or a list separated with '"+BitfieldSeparator+"'")},
		codec:     codec,
		allowZero: allowZero,
	}
	s.Register(p)
	return p
}

// SetExtraValidation installs a variant-specific check run after the generic ones.
func (p *Bitfield[T]) SetExtraValidation(fn func(T) bool) {
	p.extra = fn
}

func (p *Bitfield[T]) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *Bitfield[T]) String() string            { return formatKeyValue(p.key, p.ValueString()) }

// parseValue ORs every named flag. Any unknown name clears the whole value.
func (p *Bitfield[T]) parseValue(s string) {
	p.value = 0
	for _, name := range strings.Split(s, BitfieldSeparator) {
		flag := p.codec.Parse(name)
		if flag == 0 {
			p.value = 0
			return
		}
		p.value |= flag
	}
}

func (p *Bitfield[T]) Validate() bool {
	var all T
	enabled := 0
	for _, v := range p.codec.Values() {
		all |= v
		if v != 0 && p.value&v == v {
			enabled++
		}
	}
	if enabled == 0 && !(p.allowZero && p.value == 0) {
		return false
	}
	if p.value&^all != 0 {
		return false
	}
	if p.extra != nil && !p.extra(p.value) {
		return false
	}
	return true
}

// ValueString joins the names of every enabled flag.
func (p *Bitfield[T]) ValueString() string {
	var names []string
	for _, v := range p.codec.Values() {
		if v != 0 && p.value&v == v {
			if name, ok := p.codec.Serialize(v); ok {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, BitfieldSeparator)
}

// Get returns the current value.
func (p *Bitfield[T]) Get() T { return p.value }

// Set assigns the value and marks it as explicitly set.
func (p *Bitfield[T]) Set(v T) {
	p.value = v
	p.markAsParsed()
}
