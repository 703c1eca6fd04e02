package testcase

import (
	"strings"
	"testing"

	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

func TestResult_Info(t *testing.T) {
	tests := []struct {
		result      Result
		wantMessage string
		wantSingle  bool
		wantAll     bool
		wantSkipped bool
	}{
		{Error, "ERROR", true, true, false},
		{DeviceNotCapable, "NO_SUPPORT", true, false, true},
		{ApiNotCapable, "NO_SUPPORT (API)", true, false, true},
		{SkippedApi, "SKIPPED", false, false, true},
		{NoImplementation, "NO_IMPLEMENT", true, false, true},
		{InvalidArgs, "INVALID_ARGS", true, true, true},
		{FilteredOut, "FILTERED_OUT", true, false, true},
		{KernelBuildError, "KERNEL_BUILD_ERROR", true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			info := tt.result.Info()
			if info.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", info.Message, tt.wantMessage)
			}
			if info.PrintInSingleTestMode != tt.wantSingle || info.PrintInAllTestsMode != tt.wantAll || info.WasSkipped != tt.wantSkipped {
				t.Errorf("Info() = %+v", info)
			}
		})
	}
}

func TestResult_EveryNonSuccessHasInfo(t *testing.T) {
	for r := Error; r <= KernelBuildError; r++ {
		if _, ok := resultInfos[r]; !ok {
			t.Errorf("result %v has no print policy", r)
		}
		if r.String() == "Unknown" {
			t.Errorf("result %d has no name", int(r))
		}
	}
}

func TestResult_SuccessInfoWarns(t *testing.T) {
	warnings := captureWarnings(t)

	_ = Error.Info()
	if warnings.Len() != 0 {
		t.Errorf("Error.Info() warned: %q", warnings.String())
	}

	err := errors.Catch(func() { _ = Success.Info() })
	if _, ok := err.(*errors.FatalError); !ok {
		t.Errorf("Success.Info() error = %v, want *FatalError", err)
	}
	if !strings.Contains(warnings.String(), "DEVELOPER_WARNING") {
		t.Errorf("Success.Info() did not warn: %q", warnings.String())
	}
}

func TestResult_ShouldPrint(t *testing.T) {
	tests := []struct {
		result          Result
		printAllResults bool
		singleTestMode  bool
		want            bool
	}{
		{SkippedApi, false, false, false},
		{SkippedApi, false, true, false},
		{SkippedApi, true, false, true},
		{NoImplementation, false, false, false},
		{NoImplementation, false, true, true},
		{Error, false, false, true},
	}
	for _, tt := range tests {
		if got := tt.result.ShouldPrint(tt.printAllResults, tt.singleTestMode); got != tt.want {
			t.Errorf("%v.ShouldPrint(%v, %v) = %v, want %v", tt.result, tt.printAllResults, tt.singleTestMode, got, tt.want)
		}
	}
}

func TestResult_Failed(t *testing.T) {
	for r, want := range map[Result]bool{
		Success:          false,
		Error:            true,
		VerificationFail: true,
		KernelBuildError: true,
		SkippedApi:       false,
		InvalidArgs:      false,
	} {
		if got := r.Failed(); got != want {
			t.Errorf("%v.Failed() = %v, want %v", r, got, want)
		}
	}
}
