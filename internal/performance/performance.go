// Package performance provides concurrency helpers for CPU-bound
// fan-out work.
package performance

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ParallelFor runs fn(i) for every i in [0, n) across at most workers
// goroutines and returns once all calls have completed. Each index is
// processed exactly once; fn must handle its own synchronization for
// any shared state beyond per-index slots. workers <= 0 means one
// worker per CPU.
func ParallelFor(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
