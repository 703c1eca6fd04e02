package testcase

import (
	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

// Result is the outcome of one test-case run.
type Result int

const (
	Success                 Result = iota // measured successfully
	Error                                 // the compute API returned an error
	DriverFunctionNotFound                // extension function was not found
	DeviceNotCapable                      // device lacks a required capability
	ApiNotCapable                         // the API cannot express the given parameters
	KernelNotFound                        // kernel binary missing from the working directory
	SkippedApi                            // disabled with --api
	UnsupportedApi                        // not supported by this binary
	NoImplementation                      // not implemented for the API
	IntelExtensionsRequired               // requires vendor extensions that were disabled
	InvalidArgs                           // parameters failed validation
	Nooped                                // noop run, only the name is printed
	FilteredOut                           // rejected by a filter or limited gating
	VerificationFail                      // results were incorrect
	KernelBuildError                      // kernel could not be compiled
)

var resultNames = map[Result]string{
	Success:                 "Success",
	Error:                   "Error",
	DriverFunctionNotFound:  "DriverFunctionNotFound",
	DeviceNotCapable:        "DeviceNotCapable",
	ApiNotCapable:           "ApiNotCapable",
	KernelNotFound:          "KernelNotFound",
	SkippedApi:              "SkippedApi",
	UnsupportedApi:          "UnsupportedApi",
	NoImplementation:        "NoImplementation",
	IntelExtensionsRequired: "IntelExtensionsRequired",
	InvalidArgs:             "InvalidArgs",
	Nooped:                  "Nooped",
	FilteredOut:             "FilteredOut",
	VerificationFail:        "VerificationFail",
	KernelBuildError:        "KernelBuildError",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "Unknown"
}

// ResultInfo is the print policy of a non-success result.
type ResultInfo struct {
	Message                    string
	PrintInSingleTestMode      bool
	PrintInAllTestsMode        bool
	WasSkipped                 bool
	PrintInPrintAllResultsMode bool
}

var resultInfos = map[Result]ResultInfo{
	//                        message               single  all    skipped  printAll
	Error:                   {"ERROR", true, true, false, true},
	DriverFunctionNotFound:  {"NO_SUPPORT", true, true, true, true},
	DeviceNotCapable:        {"NO_SUPPORT", true, false, true, true},
	ApiNotCapable:           {"NO_SUPPORT (API)", true, false, true, true},
	KernelNotFound:          {"MISSING_KERNEL", true, true, true, true},
	SkippedApi:              {"SKIPPED", false, false, true, true},
	UnsupportedApi:          {"SKIPPED", false, false, true, true},
	NoImplementation:        {"NO_IMPLEMENT", true, false, true, true},
	IntelExtensionsRequired: {"NO_SUPPORT", true, false, true, true},
	InvalidArgs:             {"INVALID_ARGS", true, true, true, true},
	Nooped:                  {"NOOP", true, true, true, true},
	FilteredOut:             {"FILTERED_OUT", true, false, true, true},
	VerificationFail:        {"VERIF_FAIL", true, true, false, true},
	KernelBuildError:        {"KERNEL_BUILD_ERROR", true, true, false, true},
}

// Info returns the print policy of r. Success has no policy.
func (r Result) Info() ResultInfo {
	if r == Success {
		errors.Warnf("tried to get metadata for Success result")
	}
	info, ok := resultInfos[r]
	if !ok {
		errors.Fatalf("no metadata for result %d", int(r))
	}
	return info
}

// Failed reports whether r is a run-time failure rather than a skip.
func (r Result) Failed() bool {
	if r == Success {
		return false
	}
	info, ok := resultInfos[r]
	return ok && !info.WasSkipped
}

// ShouldPrint reports whether a status line is printed for r.
func (r Result) ShouldPrint(printAllResults, singleTestMode bool) bool {
	info := r.Info()
	if printAllResults && info.PrintInPrintAllResultsMode {
		return true
	}
	if singleTestMode {
		return info.PrintInSingleTestMode
	}
	return info.PrintInAllTestsMode
}
