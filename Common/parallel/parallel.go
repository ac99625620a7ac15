// Package parallel is the worker-side data-parallel map utility: it fans one
// buffer out over disjoint, contiguous sub-ranges and joins every sub-task
// before returning. Sub-ranges never overlap, so callers need no locking on
// the buffer itself.
package parallel

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// ForEachRange splits [0,n) into parts contiguous sub-ranges of floor(n/parts)
// elements each, the remainder folded into the last, and runs fn on each via
// pool. It returns only after every sub-task has completed.
func ForEachRange(pool *ants.Pool, n, parts int, fn func(start, end int)) error {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	per := n / parts
	var wg sync.WaitGroup
	for t := 0; t < parts; t++ {
		start := t * per
		end := start + per
		if t == parts-1 {
			end = n
		}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			fn(start, end)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			wg.Wait()
			return err
		}
	}
	wg.Wait()
	return nil
}
