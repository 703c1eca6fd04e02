package host

import (
	"time"

	"github.com/AndreyAkinshin/gpubench/internal/argument"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
	"github.com/AndreyAkinshin/gpubench/internal/testcase"
)

type timerArgs struct {
	testcase.Arguments
	CallsCount *argument.PositiveInteger
}

func newTimerArgs() *timerArgs {
	a := &timerArgs{}
	a.CallsCount = argument.NewPositiveInteger(a.Set(), "callsCount", "Number of clock reads averaged into one sample")
	return a
}

func newTimerResolution() *testcase.Benchmark[*timerArgs] {
	return testcase.New("TimerResolution",
		"Measures the average cost of reading the monotonic clock.",
		newTimerArgs).
		Implement(enum.ApiOMP, timerResolution).
		Instantiate("TimerResolution", testcase.Combine(
			testcase.Apis[*timerArgs](enum.ApiOMP),
			testcase.Values(func(a *timerArgs, v int64) { a.CallsCount.Set(v) }, 1, 100, 10000),
		))
}

func timerResolution(a *timerArgs, sink stats.Sink) testcase.Result {
	if a.Noop {
		sink.PushUnitAndType(stats.Nanoseconds, stats.Cpu)
		return testcase.Nooped
	}

	calls := a.CallsCount.Get()
	for i := 0; i < a.Iterations; i++ {
		start := time.Now()
		for j := int64(0); j < calls; j++ {
			_ = time.Now()
		}
		elapsed := time.Since(start)
		sink.PushValue(elapsed/time.Duration(calls), stats.Nanoseconds, stats.Cpu, "")
	}
	return testcase.Success
}
