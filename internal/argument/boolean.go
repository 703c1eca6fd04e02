package argument

import (
	"strconv"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

// Boolean accepts exactly 0 or 1. Until parsed it holds neither and does not validate.
type Boolean struct {
	base
	value int64
}

// NewBoolean declares a 0/1 parameter in s. The help text gets a "(0 or 1)" suffix.
func NewBoolean(s *Set, key, help string) *Boolean {
	if help == "" {
		help = "(0 or 1)"
	} else {
		help += " (0 or 1)"
	}
	p := &Boolean{base: base{key: key, help: help}, value: -1}
	s.Register(p)
	return p
}

func (p *Boolean) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *Boolean) Validate() bool            { return p.value == 0 || p.value == 1 }
func (p *Boolean) ValueString() string       { return strconv.FormatInt(p.value, 10) }
func (p *Boolean) String() string            { return formatKeyValue(p.key, p.ValueString()) }

func (p *Boolean) parseValue(s string) { p.value = atoi(s) }

// Get returns the value as a bool.
func (p *Boolean) Get() bool { return p.value != 0 }

// Set assigns the value and marks it as explicitly set.
func (p *Boolean) Set(v bool) {
	p.value = 0
	if v {
		p.value = 1
	}
	p.markAsParsed()
}

// BooleanFlag is a switch. A bare --key sets it; --key=0 clears it.
type BooleanFlag struct {
	base
	value bool
}

// NewBooleanFlag declares a switch parameter in s.
func NewBooleanFlag(s *Set, key, help string) *BooleanFlag {
	p := &BooleanFlag{base: base{key: key, help: help}}
	s.Register(p)
	return p
}

func (p *BooleanFlag) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *BooleanFlag) Validate() bool            { return true }
func (p *BooleanFlag) String() string            { return formatKeyValue(p.key, p.ValueString()) }

func (p *BooleanFlag) ValueString() string {
	if p.value {
		return "1"
	}
	return "0"
}

func (p *BooleanFlag) parseValue(s string) {
	if s == "" {
		p.value = true
		return
	}
	if b, err := strconv.ParseBool(s); err == nil {
		p.value = b
		return
	}
	p.value = atoi(s) != 0
}

// Get returns the current state.
func (p *BooleanFlag) Get() bool { return p.value }

// Set assigns the state and marks it as explicitly set.
func (p *BooleanFlag) Set(v bool) {
	p.value = v
	p.markAsParsed()
}
