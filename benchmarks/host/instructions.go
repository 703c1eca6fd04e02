package host

import (
	"runtime"

	"github.com/AndreyAkinshin/gpubench/internal/argument"
	"github.com/AndreyAkinshin/gpubench/internal/cpucounter"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
	"github.com/AndreyAkinshin/gpubench/internal/testcase"
)

type instructionArgs struct {
	testcase.Arguments
	WorkSize *argument.PositiveInteger
}

func newInstructionArgs() *instructionArgs {
	a := &instructionArgs{}
	a.WorkSize = argument.NewPositiveInteger(a.Set(), "workSize", "Number of loop iterations executed per sample")
	return a
}

func newCpuInstructionCount() *testcase.Benchmark[*instructionArgs] {
	return testcase.New("CpuInstructionCount",
		"Counts instructions retired by a fixed integer loop using hardware performance counters.",
		newInstructionArgs).
		Implement(enum.ApiOMP, cpuInstructionCount).
		Instantiate("CpuInstructionCount", testcase.Combine(
			testcase.Apis[*instructionArgs](enum.ApiOMP),
			testcase.Values(func(a *instructionArgs, v int64) { a.WorkSize.Set(v) }, 1000, 1000000),
		))
}

var workResult uint64

func work(n int64) {
	var acc uint64
	for i := int64(0); i < n; i++ {
		acc = acc*31 + uint64(i)
	}
	workResult = acc
}

func cpuInstructionCount(a *instructionArgs, sink stats.Sink) testcase.Result {
	if a.Noop {
		sink.PushUnitAndType(stats.CpuHardwareCounter, stats.Cpu)
		return testcase.Nooped
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	counter, err := cpucounter.Open()
	if err != nil {
		return testcase.DeviceNotCapable
	}
	defer counter.Close()

	for i := 0; i < a.Iterations; i++ {
		if err := counter.Start(); err != nil {
			return testcase.Error
		}
		work(a.WorkSize.Get())
		count, err := counter.Stop()
		if err != nil {
			return testcase.Error
		}
		sink.PushCpuCounter(count, stats.CpuHardwareCounter, stats.Cpu, "")
	}
	return testcase.Success
}
