package argument

import (
	"math"
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

type integerBase struct {
	base
	value int64
}

func (p *integerBase) ValueString() string { return strconv.FormatInt(p.value, 10) }
func (p *integerBase) parseValue(s string) { p.value = atoi(s) }

// Integer is a free signed integer.
type Integer struct {
	integerBase
}

// NewInteger declares an integer parameter in s.
func NewInteger(s *Set, key, help string) *Integer {
	p := &Integer{integerBase{base: base{key: key, help: help}}}
	s.Register(p)
	return p
}

func (p *Integer) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *Integer) Validate() bool            { return true }
func (p *Integer) String() string            { return formatKeyValue(p.key, p.ValueString()) }

// Get returns the current value.
func (p *Integer) Get() int64 { return p.value }

// Set assigns the value and marks it as explicitly set.
func (p *Integer) Set(v int64) {
	p.value = v
	p.markAsParsed()
}

// NonNegativeInteger is an integer that must be >= 0.
type NonNegativeInteger struct {
	integerBase
}

// NewNonNegativeInteger declares a non-negative integer parameter in s.
func NewNonNegativeInteger(s *Set, key, help string) *NonNegativeInteger {
	p := &NonNegativeInteger{integerBase{base: base{key: key, help: help}}}
	s.Register(p)
	return p
}

func (p *NonNegativeInteger) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *NonNegativeInteger) Validate() bool            { return p.value >= 0 }
func (p *NonNegativeInteger) String() string            { return formatKeyValue(p.key, p.ValueString()) }

// Get returns the current value.
func (p *NonNegativeInteger) Get() int64 { return p.value }

// Set assigns the value and marks it as explicitly set.
func (p *NonNegativeInteger) Set(v int64) {
	p.value = v
	p.markAsParsed()
}

// PositiveInteger is an integer that must be > 0.
type PositiveInteger struct {
	integerBase
}

// NewPositiveInteger declares a strictly positive integer parameter in s.
func NewPositiveInteger(s *Set, key, help string) *PositiveInteger {
	p := &PositiveInteger{integerBase{base: base{key: key, help: help}}}
	s.Register(p)
	return p
}

func (p *PositiveInteger) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *PositiveInteger) Validate() bool            { return p.value > 0 }
func (p *PositiveInteger) String() string            { return formatKeyValue(p.key, p.ValueString()) }

// Get returns the current value.
func (p *PositiveInteger) Get() int64 { return p.value }

// Set assigns the value and marks it as explicitly set.
func (p *PositiveInteger) Set(v int64) {
	p.value = v
	p.markAsParsed()
}

var (
	byteSizeFormatUnits = []string{"", "KB", "MB", "GB"}

	// Checked in order; "b" must come after the multi-letter suffixes.
	byteSizeParseUnits = []struct {
		suffix     string
		multiplier int64
	}{
		{"kb", 1 << 10},
		{"mb", 1 << 20},
		{"gb", 1 << 30},
		{"b", 1},
		{"", 1},
	}
)

// ByteSize is a positive byte count accepting kb/mb/gb/b suffixes.
type ByteSize struct {
	integerBase
}

// NewByteSize declares a byte-size parameter in s.
func NewByteSize(s *Set, key, help string) *ByteSize {
	p := &ByteSize{integerBase{base: base{key: key, help: help}}}
	s.Register(p)
	return p
}

func (p *ByteSize) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *ByteSize) Validate() bool            { return p.value > 0 }
func (p *ByteSize) String() string            { return formatKeyValue(p.key, p.ValueString()) }

// Get returns the size in bytes.
func (p *ByteSize) Get() int64 { return p.value }

// Set assigns the size in bytes and marks it as explicitly set.
func (p *ByteSize) Set(v int64) {
	p.value = v
	p.markAsParsed()
}

// ValueString reduces the value to the largest unit dividing it evenly.
func (p *ByteSize) ValueString() string {
	return FormatByteSize(p.value)
}

func (p *ByteSize) parseValue(s string) {
	p.value = ParseByteSize(s)
}

// FormatByteSize renders a byte count with the largest evenly dividing unit.
func FormatByteSize(v int64) string {
	if v == 0 {
		return "0"
	}
	unit := 0
	for unit < len(byteSizeFormatUnits)-1 && v%1024 == 0 {
		v /= 1024
		unit++
	}
	return strconv.FormatInt(v, 10) + byteSizeFormatUnits[unit]
}

// ParseByteSize converts a size with an optional case-insensitive unit suffix.
// A size that does not fit in int64 yields 0.
func ParseByteSize(s string) int64 {
	lower := strings.ToLower(s)
	for _, u := range byteSizeParseUnits {
		if strings.HasSuffix(lower, u.suffix) {
			v := atoi(strings.TrimSuffix(lower, u.suffix))
			if v > math.MaxInt64/u.multiplier || v < math.MinInt64/u.multiplier {
				return 0
			}
			return v * u.multiplier
		}
	}
	return 0
}

// FractionBase is a positive divisor rendered as the percentage it selects.
type FractionBase struct {
	integerBase
}

// NewFractionBase declares a fraction-base parameter in s.
func NewFractionBase(s *Set, key, help string) *FractionBase {
	p := &FractionBase{integerBase{base: base{key: key, help: help}}}
	s.Register(p)
	return p
}

func (p *FractionBase) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *FractionBase) Validate() bool            { return p.value > 0 }
func (p *FractionBase) String() string            { return formatKeyValue(p.key, p.ValueString()) }

// Get returns the divisor.
func (p *FractionBase) Get() int64 { return p.value }

// Set assigns the divisor and marks it as explicitly set.
func (p *FractionBase) Set(v int64) {
	p.value = v
	p.markAsParsed()
}

// ValueString renders 100/value followed by a percent sign.
func (p *FractionBase) ValueString() string {
	if p.value == 0 {
		return "0"
	}
	return strconv.FormatFloat(100/float64(p.value), 'g', 4, 64) + "%"
}
