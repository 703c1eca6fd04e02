package argument

import (
	"strings"
	"testing"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

func parseInto(t *testing.T, s *Set, tokens ...string) cmdline.Arguments {
	t.Helper()
	args, err := cmdline.Parse(tokens)
	if err != nil {
		t.Fatalf("cmdline.Parse() error = %v", err)
	}
	s.Parse(args)
	return args
}

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"42", 42},
		{"-7", -7},
		{"+3", 3},
		{" 12abc", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		if got := atoi(tt.in); got != tt.want {
			t.Errorf("atoi(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParse_MatchesOnlyOwnKey(t *testing.T) {
	s := NewSet()
	count := NewPositiveInteger(s, "count", "number of items")
	args := parseInto(t, s, "--count=5", "--other=1")

	if !count.WasParsed() || count.Get() != 5 {
		t.Errorf("count = %d (parsed %v), want 5 (parsed)", count.Get(), count.WasParsed())
	}
	if !args[0].Processed() {
		t.Error("--count token not processed")
	}
	if args[1].Processed() {
		t.Error("--other token processed by unrelated parameter")
	}
}

func TestSet_DuplicateKeyIsFatal(t *testing.T) {
	s := NewSet()
	NewInteger(s, "x", "")
	err := errors.Catch(func() {
		NewInteger(s, "x", "")
	})
	if err == nil {
		t.Fatal("registering a duplicate key did not fail")
	}
}

func TestSet_ValidateAndExtra(t *testing.T) {
	s := NewSet()
	a := NewPositiveInteger(s, "a", "")
	b := NewPositiveInteger(s, "b", "")
	a.Set(1)
	b.Set(2)
	if !s.Validate() {
		t.Fatal("Validate() = false, want true")
	}

	s.SetExtraValidation(func() bool { return a.Get() > b.Get() })
	if s.Validate() {
		t.Error("Validate() = true, want extra check to fail")
	}

	s.SetExtraValidation(nil)
	b.Set(0)
	if s.Validate() {
		t.Error("Validate() = true with b=0")
	}
	if got := Keys(s.Invalid()); len(got) != 1 || got[0] != "b" {
		t.Errorf("Invalid() = %v, want [b]", got)
	}
}

func TestSet_Unparsed(t *testing.T) {
	s := NewSet()
	NewPositiveInteger(s, "a", "")
	NewByteSize(s, "size", "")
	NewBoolean(s, "flag", "")
	parseInto(t, s, "--size=1KB")

	got := strings.Join(Keys(s.Unparsed()), ",")
	if got != "a,flag" {
		t.Errorf("Unparsed() = %q, want a,flag", got)
	}
}

func TestSet_HelpAndStrings(t *testing.T) {
	s := NewSet()
	n := NewPositiveInteger(s, "n", "count")
	f := NewBoolean(s, "useEvents", "Use events")
	n.Set(3)
	f.Set(true)

	help := s.Help(2)
	want := "\t\t--n - count\n\t\t--useEvents - Use events (0 or 1)\n"
	if help != want {
		t.Errorf("Help() = %q, want %q", help, want)
	}
	if got := strings.Join(s.Strings(), " "); got != "n=3 useEvents=1" {
		t.Errorf("Strings() = %q", got)
	}
}

func TestIntegerFamily_Validate(t *testing.T) {
	s := NewSet()
	i := NewInteger(s, "i", "")
	nn := NewNonNegativeInteger(s, "nn", "")
	pos := NewPositiveInteger(s, "pos", "")
	parseInto(t, s, "--i=-4", "--nn=0", "--pos=0")

	if !i.Validate() || i.Get() != -4 {
		t.Errorf("Integer = %d, Validate() = %v", i.Get(), i.Validate())
	}
	if !nn.Validate() {
		t.Error("NonNegativeInteger(0).Validate() = false")
	}
	if pos.Validate() {
		t.Error("PositiveInteger(0).Validate() = true")
	}
	nn.Set(-1)
	if nn.Validate() {
		t.Error("NonNegativeInteger(-1).Validate() = true")
	}
}

func TestByteSize_Parse(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"512", 512},
		{"512b", 512},
		{"1KB", 1024},
		{"4kb", 4096},
		{"3MB", 3 << 20},
		{"2Gb", 2 << 30},
		{"junk", 0},
		{"8589934591gb", 8589934591 << 30},
		{"8589934592gb", 0},
		{"9007199254740992kb", 0},
	}
	for _, tt := range tests {
		if got := ParseByteSize(tt.in); got != tt.want {
			t.Errorf("ParseByteSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestByteSize_Format(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1000, "1000"},
		{1024, "1KB"},
		{1536, "1536"},
		{3 << 20, "3MB"},
		{1 << 30, "1GB"},
		{1 << 40, "1024GB"},
	}
	for _, tt := range tests {
		if got := FormatByteSize(tt.in); got != tt.want {
			t.Errorf("FormatByteSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestByteSize_RoundTrip(t *testing.T) {
	inputs := []string{"1", "17b", "1kb", "1024KB", "5MB", "3072mb", "1gb", "96KB", "4GB"}
	for _, in := range inputs {
		first := ParseByteSize(in)
		again := ParseByteSize(FormatByteSize(first))
		if again != first {
			t.Errorf("round trip of %q: %d -> %q -> %d", in, first, FormatByteSize(first), again)
		}
	}
}

func TestFractionBase(t *testing.T) {
	s := NewSet()
	f := NewFractionBase(s, "fraction", "")
	parseInto(t, s, "--fraction=4")
	if f.String() != "fraction=25%" {
		t.Errorf("String() = %q, want fraction=25%%", f.String())
	}
	if !f.Validate() {
		t.Error("Validate() = false")
	}
}

func TestBoolean(t *testing.T) {
	tests := []struct {
		token string
		valid bool
		value bool
	}{
		{"--b=0", true, false},
		{"--b=1", true, true},
		{"--b=2", false, true},
		{"--b", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s := NewSet()
			b := NewBoolean(s, "b", "")
			parseInto(t, s, tt.token)
			if b.Validate() != tt.valid {
				t.Errorf("Validate() = %v, want %v", b.Validate(), tt.valid)
			}
			if b.Get() != tt.value {
				t.Errorf("Get() = %v, want %v", b.Get(), tt.value)
			}
		})
	}

	unset := NewBoolean(NewSet(), "b", "")
	if unset.Validate() {
		t.Error("unparsed Boolean validates")
	}
}

func TestBooleanFlag(t *testing.T) {
	tests := []struct {
		tokens []string
		want   bool
	}{
		{nil, false},
		{[]string{"--csv"}, true},
		{[]string{"--csv=0"}, false},
		{[]string{"--csv=1"}, true},
		{[]string{"--csv=true"}, true},
	}
	for _, tt := range tests {
		s := NewSet()
		csv := NewBooleanFlag(s, "csv", "")
		parseInto(t, s, tt.tokens...)
		if csv.Get() != tt.want {
			t.Errorf("%v: Get() = %v, want %v", tt.tokens, csv.Get(), tt.want)
		}
	}
}

func TestStringList(t *testing.T) {
	s := NewSet()
	l := NewStringList(s, "filter", "")
	parseInto(t, s, "--filter=a  b\tc")
	if got := strings.Join(l.Get(), ","); got != "a,b,c" {
		t.Errorf("Get() = %q, want a,b,c", got)
	}
	if l.String() != "filter=a b c" {
		t.Errorf("String() = %q", l.String())
	}
}

func TestString(t *testing.T) {
	s := NewSet()
	name := NewString(s, "test", "")
	parseInto(t, s, "--test=KernelSwitch")
	if name.Get() != "KernelSwitch" {
		t.Errorf("Get() = %q", name.Get())
	}
}
