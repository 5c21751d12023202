package reduce

import (
	"sync"

	"github.com/rmera/nlist"
)

// run splits the range [0, n) into an interlaced assignment across
// workerCount(MaxThreads(), n) goroutines, gives each a private buffer of
// length bufLen (zero-valued via make), and calls unit(buf, i) for every
// index i assigned to that worker. Once every worker finishes, combine is
// called once per worker buffer, in worker order, to fold it into dst.
//
// When only one worker is used, no goroutine is spawned: unit is called
// inline against dst itself, in index order, and combine is not called.
func run[B any](n int, bufLen int, unit func(buf []B, i int), combine func(dst, src []B)) []B {
	dst := make([]B, bufLen)
	w := workerCount(nlist.MaxThreads(), n)

	if w <= 1 {
		for i := 0; i < n; i++ {
			unit(dst, i)
		}
		return dst
	}

	var wg sync.WaitGroup
	buffers := make([][]B, w)
	wg.Add(w)
	for worker := 0; worker < w; worker++ {
		worker := worker
		go func() {
			defer wg.Done()
			buf := make([]B, bufLen)
			for i := worker; i < n; i += w {
				unit(buf, i)
			}
			buffers[worker] = buf
		}()
	}
	wg.Wait()

	for _, buf := range buffers {
		combine(dst, buf)
	}
	return dst
}
