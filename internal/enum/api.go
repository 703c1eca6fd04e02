// Package enum declares the enumerations shared by the harness and the scenarios.
package enum

import (
	"github.com/AndreyAkinshin/gpubench/internal/argument"
)

// Api is a compute backend under test.
type Api int

const (
	ApiUnknown Api = iota
	ApiOpenCL
	ApiL0
	ApiSYCL
	ApiSYCLPreview
	ApiOMP
	ApiUR
	ApiAll
)

// ApiFirst and ApiLast bound the concrete backends tried in single-test mode.
const (
	ApiFirst = ApiOpenCL
	ApiLast  = ApiUR
)

// ApiCodec maps backends to their command-line names.
var ApiCodec = argument.NewTable("api", ApiUnknown,
	argument.EnumEntry[Api]{Value: ApiOpenCL, Name: "ocl"},
	argument.EnumEntry[Api]{Value: ApiL0, Name: "l0"},
	argument.EnumEntry[Api]{Value: ApiSYCL, Name: "sycl"},
	argument.EnumEntry[Api]{Value: ApiSYCLPreview, Name: "syclpreview"},
	argument.EnumEntry[Api]{Value: ApiOMP, Name: "omp"},
	argument.EnumEntry[Api]{Value: ApiUR, Name: "ur"},
	argument.EnumEntry[Api]{Value: ApiAll, Name: "all"},
)

var friendlyApiNames = map[Api]string{
	ApiOpenCL:      "OpenCL",
	ApiL0:          "LevelZero",
	ApiSYCL:        "SYCL",
	ApiSYCLPreview: "SYCL preview",
	ApiOMP:         "OpenMP",
	ApiUR:          "UnifiedRuntime",
	ApiAll:         "all",
}

// String returns the command-line name of the backend.
func (a Api) String() string {
	if name, ok := ApiCodec.Serialize(a); ok {
		return name
	}
	return "unknown"
}

// FriendlyName returns the name shown in help output.
func (a Api) FriendlyName() string {
	if name, ok := friendlyApiNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ConcreteApis returns the backends from ApiFirst to ApiLast.
func ConcreteApis() []Api {
	apis := make([]Api, 0, ApiLast-ApiFirst+1)
	for a := ApiFirst; a <= ApiLast; a++ {
		apis = append(apis, a)
	}
	return apis
}

// ApiSet is the set of backends a build supports.
type ApiSet map[Api]bool

// NewApiSet builds a set from the given backends.
func NewApiSet(apis ...Api) ApiSet {
	s := make(ApiSet, len(apis))
	for _, a := range apis {
		s[a] = true
	}
	return s
}

// Contains reports whether a is supported.
func (s ApiSet) Contains(a Api) bool {
	return s[a]
}
