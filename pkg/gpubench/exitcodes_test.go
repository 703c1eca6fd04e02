package gpubench_test

import (
	"testing"

	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/pkg/gpubench"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", gpubench.ExitSuccess, 0},
		{"ExitFailure", gpubench.ExitFailure, 1},
		{"ExitFatal", gpubench.ExitFatal, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("gpubench.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodeConsistency verifies that public exit code constants match
// the internal errors package constants.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
	}{
		{"ExitSuccess", gpubench.ExitSuccess, errors.ExitSuccess},
		{"ExitFailure", gpubench.ExitFailure, errors.ExitFailure},
		{"ExitFatal", gpubench.ExitFatal, errors.ExitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("gpubench.%s = %d, errors.%s = %d", tt.name, tt.public, tt.name, tt.internal)
			}
		})
	}
}
