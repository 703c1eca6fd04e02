package schema

import (
	"testing"
)

func TestValidateConfig_Valid(t *testing.T) {
	valid := []string{
		`{}`,
		`{"api": "l0", "iterations": 20}`,
		`{"csv": true, "warmupIterations": 2, "sleepFor": 0}`,
		`{"testFilter": "^Foo", "argFilter": ["size=1KB", "^api=ocl"]}`,
		`{"subDeviceSelection": "Tile0:Tile1", "oclPlatformIndex": -1}`,
	}

	for _, doc := range valid {
		t.Run(doc, func(t *testing.T) {
			if err := ValidateConfig([]byte(doc)); err != nil {
				t.Errorf("ValidateConfig() error = %v", err)
			}
		})
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	invalid := []struct {
		name string
		doc  string
	}{
		{"unknown key", `{"unknownFlag": 5}`},
		{"unknown api", `{"api": "cuda"}`},
		{"zero iterations", `{"iterations": 0}`},
		{"string iterations", `{"iterations": "10"}`},
		{"numeric flag", `{"csv": 1}`},
		{"filter with space", `{"testFilter": ["a b"]}`},
		{"not an object", `[1, 2]`},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateConfig([]byte(tt.doc)); err == nil {
				t.Errorf("ValidateConfig(%s) error = nil, want error", tt.doc)
			}
		})
	}
}

func TestValidateConfig_MalformedJSON(t *testing.T) {
	if err := ValidateConfig([]byte(`{"api":`)); err == nil {
		t.Error("ValidateConfig() error = nil for malformed JSON")
	}
}

func TestValidateValue(t *testing.T) {
	doc := map[string]any{"api": "omp", "verbose": true}
	if err := ValidateValue(doc); err != nil {
		t.Errorf("ValidateValue() error = %v", err)
	}
}
