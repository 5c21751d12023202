package nlist

import (
	"runtime"
	"sync/atomic"
)

// maxThreads is the process-wide worker cap consulted by the reduce
// package. Zero means "unset": resolve to runtime.NumCPU(). It is
// snapshotted once per assembly call and never re-read inside a worker's
// loop.
var maxThreads atomic.Int64

// SetMaxThreads caps the number of worker goroutines a parallel
// reduction (see the reduce package) may use. n <= 0 clears the cap back
// to runtime.NumCPU(); n == 1 forces sequential, byte-identical
// execution.
func SetMaxThreads(n int) {
	maxThreads.Store(int64(n))
}

// MaxThreads reports the current worker cap, resolving an unset cap to
// runtime.NumCPU().
func MaxThreads() int {
	n := maxThreads.Load()
	if n <= 0 {
		return runtime.NumCPU()
	}
	return int(n)
}
