package metrics

import "runtime"

// MemorySnapshot holds the runtime allocation counters relevant to an engine run.
type MemorySnapshot struct {
	HeapAlloc  uint64 // live heap bytes
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	Sys        uint64 // bytes obtained from the OS
	NumGC      uint32 // completed GC cycles
	PauseTotal uint64 // cumulative GC pause, nanoseconds
}

// ReadMemory takes a snapshot of the runtime memory statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:  m.HeapAlloc,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		PauseTotal: m.PauseTotalNs,
	}
}

// AllocDelta describes what happened between two snapshots.
type AllocDelta struct {
	Bytes   uint64
	Objects uint64
	GCs     uint32
}

// Since returns the allocations performed between before and s.
func (s MemorySnapshot) Since(before MemorySnapshot) AllocDelta {
	return AllocDelta{
		Bytes:   s.TotalAlloc - before.TotalAlloc,
		Objects: s.Mallocs - before.Mallocs,
		GCs:     s.NumGC - before.NumGC,
	}
}
