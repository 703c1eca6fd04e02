package argument

import (
	"testing"
)

type color int

const (
	colorUnknown color = iota
	colorRed
	colorGreen
)

var colorCodec = NewTable("color", colorUnknown,
	EnumEntry[color]{colorRed, "Red"},
	EnumEntry[color]{colorGreen, "green"},
)

type flags uint32

const (
	flagA flags = 1 << iota
	flagB
	flagC
)

var flagsCodec = NewTable[flags]("flags", 0,
	EnumEntry[flags]{flagA, "a"},
	EnumEntry[flags]{flagB, "b"},
	EnumEntry[flags]{flagC, "c"},
)

func TestEnum(t *testing.T) {
	tests := []struct {
		token string
		want  color
		valid bool
		str   string
	}{
		{"--color=red", colorRed, true, "color=Red"},
		{"--color=RED", colorRed, true, "color=Red"},
		{"--color=Green", colorGreen, true, "color=green"},
		{"--color=blue", colorUnknown, false, "color=unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s := NewSet()
			c := NewEnum[color](s, "color", "", colorCodec)
			parseInto(t, s, tt.token)
			if c.Get() != tt.want {
				t.Errorf("Get() = %v, want %v", c.Get(), tt.want)
			}
			if c.Validate() != tt.valid {
				t.Errorf("Validate() = %v, want %v", c.Validate(), tt.valid)
			}
			if c.String() != tt.str {
				t.Errorf("String() = %q, want %q", c.String(), tt.str)
			}
		})
	}
}

func TestEnum_Help(t *testing.T) {
	c := NewEnum[color](NewSet(), "color", "Paint", colorCodec)
	if c.Help() != "Paint (Red or green)" {
		t.Errorf("Help() = %q", c.Help())
	}
	plain := NewEnum[color](NewSet(), "color", "", colorCodec)
	if plain.Help() != "(Red or green)" {
		t.Errorf("Help() = %q", plain.Help())
	}
}

func TestTable(t *testing.T) {
	if got := colorCodec.Names(); len(got) != 2 || got[0] != "Red" {
		t.Errorf("Names() = %v", got)
	}
	if _, ok := colorCodec.Serialize(colorUnknown); ok {
		t.Error("Serialize(unknown) ok = true")
	}
	if colorCodec.Parse("") != colorUnknown {
		t.Error("Parse(\"\") is not the invalid sentinel")
	}
}

func TestBitfield(t *testing.T) {
	tests := []struct {
		value string
		want  flags
		valid bool
		str   string
	}{
		{"a", flagA, true, "a"},
		{"A:c", flagA | flagC, true, "a:c"},
		{"c:a", flagA | flagC, true, "a:c"},
		{"a:x", 0, false, "0"},
		{"", 0, false, "0"},
		{"a::b", 0, false, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := NewSet()
			f := NewBitfield[flags](s, "f", "", flagsCodec, false)
			parseInto(t, s, "--f="+tt.value)
			if f.Get() != tt.want {
				t.Errorf("Get() = %b, want %b", f.Get(), tt.want)
			}
			if f.Validate() != tt.valid {
				t.Errorf("Validate() = %v, want %v", f.Validate(), tt.valid)
			}
			if f.ValueString() != tt.str {
				t.Errorf("ValueString() = %q, want %q", f.ValueString(), tt.str)
			}
		})
	}
}

func TestBitfield_UnknownBitsAndZero(t *testing.T) {
	s := NewSet()
	f := NewBitfield[flags](s, "f", "", flagsCodec, false)
	f.Set(flagA | 1<<10)
	if f.Validate() {
		t.Error("Validate() = true with an unknown bit")
	}

	z := NewBitfield[flags](NewSet(), "z", "", flagsCodec, true)
	z.Set(0)
	if !z.Validate() {
		t.Error("Validate() = false for allowed zero value")
	}
}

func TestBitfield_ExtraValidation(t *testing.T) {
	f := NewBitfield[flags](NewSet(), "f", "", flagsCodec, false)
	f.SetExtraValidation(func(v flags) bool { return v != flagA|flagB })
	f.Set(flagA | flagB)
	if f.Validate() {
		t.Error("Validate() = true, want extra check to reject")
	}
	f.Set(flagB)
	if !f.Validate() {
		t.Error("Validate() = false")
	}
}

func TestBitfield_Help(t *testing.T) {
	f := NewBitfield[flags](NewSet(), "f", "Flags", flagsCodec, false)
	want := "Flags (a or b or c or a list separated with ':')"
	if f.Help() != want {
		t.Errorf("Help() = %q, want %q", f.Help(), want)
	}
}

func TestBitmask(t *testing.T) {
	tests := []struct {
		value         string
		canBeAllZeros bool
		valid         bool
		str           string
	}{
		{"1", false, true, "0001"},
		{"0101", false, true, "0101"},
		{"0000", false, false, "0000"},
		{"0000", true, true, "0000"},
		{"0", true, true, "0000"},
		{"10101", false, false, "0000"},
		{"", true, false, "0000"},
		{"0102", true, false, "0000"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := NewSet()
			m := NewBitmask(s, "mask", "", 4, tt.canBeAllZeros)
			parseInto(t, s, "--mask="+tt.value)
			if m.Validate() != tt.valid {
				t.Errorf("Validate() = %v, want %v", m.Validate(), tt.valid)
			}
			if m.ValueString() != tt.str {
				t.Errorf("ValueString() = %q, want %q", m.ValueString(), tt.str)
			}
		})
	}
}

func TestBitmask_ValidateIffNonZeroOrAllowed(t *testing.T) {
	const width = 3
	for v := 0; v < 1<<width; v++ {
		for length := 1; length <= width; length++ {
			if v >= 1<<length {
				continue
			}
			bits := make([]byte, length)
			for i := 0; i < length; i++ {
				bits[length-1-i] = '0' + byte(v>>i&1)
			}
			for _, allowZero := range []bool{false, true} {
				s := NewSet()
				m := NewBitmask(s, "m", "", width, allowZero)
				parseInto(t, s, "--m="+string(bits))
				want := v != 0 || allowZero
				if m.Validate() != want {
					t.Errorf("mask %q allowZero=%v: Validate() = %v, want %v", bits, allowZero, m.Validate(), want)
				}
			}
		}
	}
}

func TestBitmask_EnabledBits(t *testing.T) {
	s := NewSet()
	m := NewBitmask(s, "m", "", 8, false)
	parseInto(t, s, "--m=100110")
	got := m.EnabledBits()
	want := []int{1, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("EnabledBits() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EnabledBits() = %v, want %v", got, want)
		}
	}
	if !m.Test(5) || m.Test(0) {
		t.Error("Test() mismatch")
	}
}

func TestThreeComponent(t *testing.T) {
	tests := []struct {
		name  string
		size  bool
		value string
		valid bool
		str   string
	}{
		{"offset", false, "0:1:2", true, "0:1:2"},
		{"size", true, "4:2:1", true, "4:2:1"},
		{"size with zero", true, "4:0:1", false, "4:0:1"},
		{"too few colons", false, "1:2", false, "0:0:0"},
		{"too many colons", false, "1:2:3:4", false, "0:0:0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet()
			var v *ThreeComponent
			if tt.size {
				v = NewThreeComponentSize(s, "gws", "")
			} else {
				v = NewThreeComponentOffset(s, "gws", "")
			}
			parseInto(t, s, "--gws="+tt.value)
			if v.Validate() != tt.valid {
				t.Errorf("Validate() = %v, want %v", v.Validate(), tt.valid)
			}
			if v.ValueString() != tt.str {
				t.Errorf("ValueString() = %q, want %q", v.ValueString(), tt.str)
			}
		})
	}
}
