package argument

import (
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

// String captures the token value verbatim.
type String struct {
	base
	value string
}

// NewString declares a string parameter in s.
func NewString(s *Set, key, help string) *String {
	p := &String{base: base{key: key, help: help}}
	s.Register(p)
	return p
}

func (p *String) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *String) Validate() bool            { return true }
func (p *String) ValueString() string       { return p.value }
func (p *String) String() string            { return formatKeyValue(p.key, p.value) }
func (p *String) parseValue(s string)       { p.value = s }

// Get returns the captured value.
func (p *String) Get() string { return p.value }

// Set assigns the value and marks it as explicitly set.
func (p *String) Set(v string) {
	p.value = v
	p.markAsParsed()
}

// StringList splits a token value on whitespace and appends the pieces.
type StringList struct {
	base
	values []string
}

// NewStringList declares a string-list parameter in s.
func NewStringList(s *Set, key, help string) *StringList {
	p := &StringList{base: base{key: key, help: help}}
	s.Register(p)
	return p
}

func (p *StringList) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *StringList) Validate() bool            { return true }
func (p *StringList) ValueString() string       { return strings.Join(p.values, " ") }
func (p *StringList) String() string            { return formatKeyValue(p.key, p.ValueString()) }

func (p *StringList) parseValue(s string) {
	p.values = append(p.values, strings.Fields(s)...)
}

// Get returns the collected values.
func (p *StringList) Get() []string { return p.values }

// Set replaces the values and marks them as explicitly set.
func (p *StringList) Set(v []string) {
	p.values = append([]string(nil), v...)
	p.markAsParsed()
}
