package worker

import "github.com/lgbarn/fourplay-go/internal/snapshot"

// Ordered drains results and hands them to fn in Index order, starting at
// index 0. Results arriving early are held until their predecessors have
// been delivered. Once fn returns an error the remaining results are
// drained and discarded, and that error is returned.
func Ordered(results <-chan ProcessResult, fn func(ProcessResult) error) error {
	pending := make(map[int]ProcessResult)
	next := 0
	var firstErr error

	for r := range results {
		if firstErr != nil {
			continue
		}
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := fn(ready); err != nil {
				firstErr = err
				break
			}
		}
	}
	return firstErr
}

// AnalyzeAll analyses snapshots on a pool of workers and delivers the
// results to fn in input order. A failing fn stops the pool.
func AnalyzeAll(snapshots []*snapshot.Snapshot, workers int, skipBad bool, fn func(ProcessResult) error) error {
	if workers < 1 {
		workers = 1
	}
	pool := NewPool(AnalyzeFunc(skipBad), WithWorkers(workers), WithBufferSize(2*workers))
	pool.Start()

	go func() {
		for i, s := range snapshots {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Snapshot: s, Index: i})
		}
		pool.Close()
	}()

	return Ordered(pool.Results(), func(r ProcessResult) error {
		if err := fn(r); err != nil {
			pool.Stop()
			return err
		}
		return nil
	})
}
