package argument

import (
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

// Bitmask is a fixed-width mask written as a binary string, most significant bit first.
type Bitmask struct {
	base
	width         int
	canBeAllZeros bool
	bits          []bool // bits[i] is bit i
	wellFormed    bool
}

// NewBitmask declares a mask of width bits in s.
func NewBitmask(s *Set, key, help string, width int, canBeAllZeros bool) *Bitmask {
	p := &Bitmask{
		base:          base{key: key, help: help},
		width:         width,
		canBeAllZeros: canBeAllZeros,
		bits:          make([]bool, width),
		wellFormed:    true,
	}
	s.Register(p)
	return p
}

func (p *Bitmask) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *Bitmask) String() string            { return formatKeyValue(p.key, p.ValueString()) }

func (p *Bitmask) parseValue(s string) {
	p.wellFormed = false
	if len(s) == 0 || len(s) > p.width {
		return
	}
	if strings.Trim(s, "01") != "" {
		return
	}
	bits := make([]bool, p.width)
	for i := 0; i < len(s); i++ {
		bits[len(s)-1-i] = s[i] == '1'
	}
	p.bits = bits
	p.wellFormed = true
}

func (p *Bitmask) Validate() bool {
	if !p.canBeAllZeros && p.none() {
		return false
	}
	return p.wellFormed
}

func (p *Bitmask) none() bool {
	for _, b := range p.bits {
		if b {
			return false
		}
	}
	return true
}

// ValueString prints all width bits, most significant first.
func (p *Bitmask) ValueString() string {
	var sb strings.Builder
	for i := p.width - 1; i >= 0; i-- {
		if p.bits[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Width returns the number of bits in the mask.
func (p *Bitmask) Width() int { return p.width }

// Test reports whether bit i is set.
func (p *Bitmask) Test(i int) bool { return i >= 0 && i < p.width && p.bits[i] }

// EnabledBits returns the indices of set bits in ascending order.
func (p *Bitmask) EnabledBits() []int {
	var result []int
	for i, b := range p.bits {
		if b {
			result = append(result, i)
		}
	}
	return result
}

// Set assigns bits from the low-order positions of v and marks the mask as explicitly set.
func (p *Bitmask) Set(v uint64) {
	for i := range p.bits {
		p.bits[i] = i < 64 && v&(1<<uint(i)) != 0
	}
	p.wellFormed = true
	p.markAsParsed()
}
