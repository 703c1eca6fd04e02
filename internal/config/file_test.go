package config

import (
	"strings"
	"testing"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
)

func TestParseDefaults(t *testing.T) {
	data := []byte(`
iterations: 5
noop: false
verbose: true
argFilter: "size=1KB ^api=ocl"
subDeviceSelection: Tile0:Tile1
`)
	given, _ := cmdline.Parse([]string{"--iterations=9"})
	args, err := ParseDefaults("defaults.yaml", data, given)
	if err != nil {
		t.Fatalf("ParseDefaults() error = %v", err)
	}

	var got []string
	for _, a := range args {
		got = append(got, a.String())
	}
	want := "--argFilter=size=1KB ^api=ocl|--noop=0|--subDeviceSelection=Tile0:Tile1|--verbose=1"
	if strings.Join(got, "|") != want {
		t.Errorf("tokens = %q, want %q", strings.Join(got, "|"), want)
	}
}

func TestParseDefaults_Empty(t *testing.T) {
	args, err := ParseDefaults("empty.yaml", nil, nil)
	if err != nil {
		t.Fatalf("ParseDefaults() error = %v", err)
	}
	if len(args) != 0 {
		t.Errorf("got %d tokens, want 0", len(args))
	}
}

func TestParseDefaults_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "iterations: [1"},
		{"wrong type", "iterations: many"},
		{"unknown key", "frobnicate: true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDefaults("x.yaml", []byte(tt.data), nil); err == nil {
				t.Error("ParseDefaults() error = nil")
			}
		})
	}
}
