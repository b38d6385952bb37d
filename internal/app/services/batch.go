package services

import "sync"

// fanOut runs fn once per item concurrently and returns the per-item
// errors by index. It never cancels siblings: batch writes here are
// best-effort by design, a failed item must not roll back the ones that
// landed.
func fanOut(n int, fn func(i int) error) []error {
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = fn(i)
		}(i)
	}
	wg.Wait()
	return errs
}
