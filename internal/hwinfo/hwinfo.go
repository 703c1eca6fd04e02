// Package hwinfo describes the host the benchmark runs on.
package hwinfo

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Info is a snapshot of the host hardware.
type Info struct {
	CPUModel      string
	PhysicalCores int
	LogicalCores  int
	TotalMemory   uint64
	Features      []string
	OS            string
	Arch          string
}

// Collect gathers host information. Fields gopsutil cannot determine stay zero.
func Collect(ctx context.Context) Info {
	info := Info{
		CPUModel: CPUModel(ctx),
		Features: Features(),
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
	}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		info.PhysicalCores = n
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.LogicalCores = n
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}

// CPUModel returns a human-readable CPU name. The result is never empty.
func CPUModel(ctx context.Context) string {
	infos, err := cpu.InfoWithContext(ctx)
	if err == nil && len(infos) > 0 {
		if infos[0].ModelName != "" {
			return strings.TrimSpace(infos[0].ModelName)
		}

		name := infos[0].VendorID
		if name == "" {
			name = runtime.GOARCH
		}
		if cores, _ := cpu.CountsWithContext(ctx, true); cores > 0 {
			return fmt.Sprintf("%s (%d cores)", name, cores)
		}
		return name
	}

	if cores, _ := cpu.CountsWithContext(ctx, true); cores > 0 {
		return fmt.Sprintf("%s (%d cores)", runtime.GOARCH, cores)
	}
	return runtime.GOARCH
}

// Features lists the SIMD extensions relevant to host-side scenarios.
func Features() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(xcpu.X86.HasSSE42, "sse4.2")
		add(xcpu.X86.HasAVX, "avx")
		add(xcpu.X86.HasAVX2, "avx2")
		add(xcpu.X86.HasFMA, "fma")
		add(xcpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(xcpu.ARM64.HasASIMD, "asimd")
		add(xcpu.ARM64.HasFPHP && xcpu.ARM64.HasASIMDHP, "fp16")
		add(xcpu.ARM64.HasSVE, "sve")
	}
	return features
}

// Lines renders the description printed by --hwInfo and the run header.
func (i Info) Lines() []string {
	lines := []string{fmt.Sprintf("Host: %s/%s, %s", i.OS, i.Arch, i.CPUModel)}
	if i.LogicalCores > 0 {
		lines = append(lines, "  cores: "+i.CoresString())
	}
	if i.TotalMemory > 0 {
		lines = append(lines, "  memory: "+i.MemoryString())
	}
	if len(i.Features) > 0 {
		lines = append(lines, fmt.Sprintf("  features: %s", strings.Join(i.Features, " ")))
	}
	return lines
}

// CoresString renders the core counts.
func (i Info) CoresString() string {
	return fmt.Sprintf("%d physical, %d logical", i.PhysicalCores, i.LogicalCores)
}

// MemoryString renders the total memory in GiB, or MiB below one GiB.
func (i Info) MemoryString() string {
	return formatMemory(i.TotalMemory)
}

func formatMemory(bytes uint64) string {
	const gib = 1 << 30
	if bytes >= gib {
		return fmt.Sprintf("%.1f GiB", float64(bytes)/gib)
	}
	return fmt.Sprintf("%d MiB", bytes>>20)
}
