package match

import (
	"sync"

	"github.com/rogpeppe/setgame/table"
)

// FindParallel is Find with the BitPacked variant, splitting the
// outer index range of the pair enumeration into contiguous
// blocks searched by up to workers goroutines. The workers share
// one read-only position index built before any of them starts,
// and the per-block results are concatenated in block order, so
// the result is identical to Find(t, BitPacked), including for
// a nil table, which yields no sets.
//
// A workers value of one or less runs the search serially.
func FindParallel(t *table.Table, workers int) []Triple {
	n := t.Len()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return findPacked(t)
	}
	packed, have := packIndex(t)
	results := make([][]Triple, workers)
	var wg sync.WaitGroup
	for w := range workers {
		lo, hi := w*n/workers, (w+1)*n/workers
		wg.Add(1)
		go func() {
			defer wg.Done()
			var found []Triple
			for i := lo; i < hi; i++ {
				pi := packed[i]
				for j := i + 1; j < n; j++ {
					if k := have[pi.Completion(packed[j])]; k > j {
						found = append(found, Triple{i, j, k})
					}
				}
			}
			results[w] = found
		}()
	}
	wg.Wait()
	var found []Triple
	for _, r := range results {
		found = append(found, r...)
	}
	return found
}
