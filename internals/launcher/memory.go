package launcher

import (
	"math"

	"github.com/pbnjay/memory"
)

// HeapMiB returns the maximum heap size the game is launched with
func (l *Launcher) HeapMiB() int {
	if l.AutoMemory {
		if auto := autoHeapMiB(memory.TotalMemory()); auto > 0 {
			return auto
		}
	}
	if l.MaxMemoryMiB > 0 {
		return l.MaxMemoryMiB
	}
	return DefaultMaxMemoryMiB
}

// autoHeapMiB sizes the heap for a system with totalBytes of memory.
// 0 is returned if the system memory is unknown.
func autoHeapMiB(totalBytes uint64) int {
	if totalBytes == 0 {
		return 0
	}
	sysMemMiB := float64(totalBytes) / 1024 / 1024

	// 1GiB for base Minecraft
	maxRamMiB := 1024.0
	// we take 1/4 of the system memory if that is more
	maxRamMiB = math.Max(maxRamMiB, sysMemMiB/4)
	// but not more than 85% of the memory
	maxRamMiB = math.Min(maxRamMiB, sysMemMiB*0.85)

	return int(maxRamMiB)
}
