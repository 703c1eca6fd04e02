// Package main is the entry point of the host benchmark.
package main

import (
	"os"

	"github.com/AndreyAkinshin/gpubench/benchmarks/host"
	"github.com/AndreyAkinshin/gpubench/internal/cli"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/testcase"
)

// version is set at build time with -ldflags "-X main.version=<version>".
var version = ""

func benchmarkInfo() cli.BenchmarkInfo {
	return cli.BenchmarkInfo{
		Name:            "host_benchmark",
		Description:     "Host benchmark measures memory copy bandwidth, clock read cost and instruction counts on the host CPU.",
		Filename:        "host_benchmark",
		NameColumnWidth: 80,
		Version:         version,
		SupportedApis:   enum.NewApiSet(enum.ApiOMP),
	}
}

func newRegistry() *testcase.Registry {
	r := testcase.NewRegistry()
	host.Register(r)
	return r
}

func main() {
	os.Exit(cli.Run(benchmarkInfo(), newRegistry(), os.Args[1:]))
}
