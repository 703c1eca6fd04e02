package host

import (
	"time"

	"github.com/AndreyAkinshin/gpubench/internal/argument"
	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
	"github.com/AndreyAkinshin/gpubench/internal/testcase"
)

const (
	kiloByte = 1024
	megaByte = 1024 * kiloByte
)

type memcpyArgs struct {
	testcase.Arguments
	Size         *argument.ByteSize
	SrcPlacement *argument.Enum[enum.MemoryPlacement]
	DstPlacement *argument.Enum[enum.MemoryPlacement]
}

func newMemcpyArgs() *memcpyArgs {
	a := &memcpyArgs{}
	a.Size = argument.NewByteSize(a.Set(), "size", "Size of the buffer to copy")
	a.SrcPlacement = argument.NewEnum[enum.MemoryPlacement](a.Set(), "srcPlacement", "Placement of the source buffer", enum.PlacementCodec)
	a.DstPlacement = argument.NewEnum[enum.MemoryPlacement](a.Set(), "dstPlacement", "Placement of the destination buffer", enum.PlacementCodec)
	return a
}

func newHostMemcpy() *testcase.Benchmark[*memcpyArgs] {
	placements := []enum.MemoryPlacement{enum.PlacementHost, enum.PlacementNonUsm}
	return testcase.New("HostMemcpy",
		"Measures bandwidth of copying a buffer between two host allocations. Device and shared placements are not available on the host.",
		newMemcpyArgs).
		Implement(enum.ApiOMP, hostMemcpy).
		Instantiate("HostMemcpy", testcase.Combine(
			testcase.Apis[*memcpyArgs](enum.ApiOMP),
			testcase.Values(func(a *memcpyArgs, v int64) { a.Size.Set(v) }, 4*kiloByte, megaByte, 64*megaByte),
			testcase.Values(func(a *memcpyArgs, v enum.MemoryPlacement) { a.SrcPlacement.Set(v) }, placements...),
			testcase.Values(func(a *memcpyArgs, v enum.MemoryPlacement) { a.DstPlacement.Set(v) }, placements...),
		)).
		Instantiate("HostMemcpyLIMITED", testcase.Combine(
			testcase.Apis[*memcpyArgs](enum.ApiOMP),
			testcase.Values(func(a *memcpyArgs, v int64) { a.Size.Set(v) }, megaByte),
			testcase.Values(func(a *memcpyArgs, v enum.MemoryPlacement) { a.SrcPlacement.Set(v) }, enum.PlacementHost),
			testcase.Values(func(a *memcpyArgs, v enum.MemoryPlacement) { a.DstPlacement.Set(v) }, enum.PlacementHost),
		)).
		InstantiateExtended("HostMemcpyExtended", testcase.Combine(
			testcase.Apis[*memcpyArgs](enum.ApiOMP),
			testcase.Values(func(a *memcpyArgs, v int64) { a.Size.Set(v) }, 64, 16*megaByte, 256*megaByte),
			testcase.Values(func(a *memcpyArgs, v enum.MemoryPlacement) { a.SrcPlacement.Set(v) }, placements...),
			testcase.Values(func(a *memcpyArgs, v enum.MemoryPlacement) { a.DstPlacement.Set(v) }, placements...),
		))
}

func hostAccessible(p enum.MemoryPlacement) bool {
	return p == enum.PlacementHost || p == enum.PlacementNonUsm
}

func hostMemcpy(a *memcpyArgs, sink stats.Sink) testcase.Result {
	if a.Noop {
		sink.PushUnitAndType(stats.GigabytesPerSecond, stats.Cpu)
		return testcase.Nooped
	}
	if !hostAccessible(a.SrcPlacement.Get()) || !hostAccessible(a.DstPlacement.Get()) {
		return testcase.DeviceNotCapable
	}

	size := a.Size.Get()
	src := make([]byte, size)
	dst := make([]byte, size)
	for i := range src {
		src[i] = byte(i * 7)
	}

	for i := 0; i < a.Iterations; i++ {
		start := time.Now()
		copy(dst, src)
		elapsed := time.Since(start)
		sink.PushBandwidth(elapsed, uint64(size), stats.GigabytesPerSecond, stats.Cpu, "")
	}

	for _, idx := range []int64{0, size / 2, size - 1} {
		if dst[idx] != src[idx] {
			return testcase.VerificationFail
		}
	}
	return testcase.Success
}
