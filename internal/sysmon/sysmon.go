// Package sysmon provides system-wide CPU and memory usage sampling and
// reports the CPU features relevant to multi-word carry arithmetic.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemTotal   uint64  // bytes
	MemFree    uint64  // bytes available for new allocations
	LogicalCPU int
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Fields stay zero on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPU = n
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
		s.MemFree = vmem.Available
	}
	return s
}

// Fits reports whether a buffer of n bytes fits in the memory the system
// currently reports as available. Unknown availability always fits.
func (s Stats) Fits(n uint64) bool {
	return s.MemFree == 0 || n <= s.MemFree
}
