package argument

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

// ThreeComponent is an "a:b:c" vector of unsigned integers.
type ThreeComponent struct {
	base
	value      [3]uint64
	wellFormed bool
	positive   bool
}

// NewThreeComponent declares a three-component vector in s.
func NewThreeComponent(s *Set, key, help string) *ThreeComponent {
	p := &ThreeComponent{base: base{key: key, help: help}, wellFormed: true}
	s.Register(p)
	return p
}

// NewThreeComponentOffset declares an offset vector in s. Zero components are allowed.
func NewThreeComponentOffset(s *Set, key, help string) *ThreeComponent {
	return NewThreeComponent(s, key, help)
}

// NewThreeComponentSize declares a size vector in s. All components must be positive.
func NewThreeComponentSize(s *Set, key, help string) *ThreeComponent {
	p := &ThreeComponent{base: base{key: key, help: help}, wellFormed: true, positive: true}
	s.Register(p)
	return p
}

func (p *ThreeComponent) Parse(a *cmdline.Argument) { p.parse(a, p.parseValue) }
func (p *ThreeComponent) String() string            { return formatKeyValue(p.key, p.ValueString()) }

func (p *ThreeComponent) ValueString() string {
	return fmt.Sprintf("%d:%d:%d", p.value[0], p.value[1], p.value[2])
}

func (p *ThreeComponent) parseValue(s string) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		p.value = [3]uint64{}
		p.wellFormed = false
		return
	}
	for i, part := range parts {
		v := atoi(part)
		if v < 0 {
			v = 0
		}
		p.value[i] = uint64(v)
	}
	p.wellFormed = true
}

func (p *ThreeComponent) Validate() bool {
	if !p.wellFormed {
		return false
	}
	if p.positive {
		return p.value[0] > 0 && p.value[1] > 0 && p.value[2] > 0
	}
	return true
}

// Get returns the three components.
func (p *ThreeComponent) Get() [3]uint64 { return p.value }

// Set assigns the components and marks the vector as explicitly set.
func (p *ThreeComponent) Set(x, y, z uint64) {
	p.value = [3]uint64{x, y, z}
	p.wellFormed = true
	p.markAsParsed()
}
