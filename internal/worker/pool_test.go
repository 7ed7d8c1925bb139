package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/fourplay-go/internal/snapshot"
	"github.com/lgbarn/fourplay-go/internal/testutil"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func item(i int) WorkItem {
	return WorkItem{Snapshot: &snapshot.Snapshot{Index: i + 1}, Index: i}
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(item(i))
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestAnalyzeFunc(t *testing.T) {
	s := snapshot.FromBoard(testutil.MustBoard(t, "h1=wR"), 1, "")
	r := AnalyzeFunc(false)(WorkItem{Snapshot: s, Index: 7})

	testutil.AssertNoError(t, r.Error)
	testutil.AssertEqual(t, r.Index, 7)
	if r.Analysis == nil || r.Analysis.Board.Count() != 1 {
		t.Fatalf("Analysis = %+v; want a one-piece board", r.Analysis)
	}
}

func TestOrdered(t *testing.T) {
	results := make(chan ProcessResult, 5)
	for _, i := range []int{3, 0, 4, 2, 1} {
		results <- ProcessResult{Index: i}
	}
	close(results)

	var got []int
	err := Ordered(results, func(r ProcessResult) error {
		got = append(got, r.Index)
		return nil
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []int{0, 1, 2, 3, 4})
}

func TestOrderedStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	results := make(chan ProcessResult, 4)
	for i := 0; i < 4; i++ {
		results <- ProcessResult{Index: i}
	}
	close(results)

	var got []int
	err := Ordered(results, func(r ProcessResult) error {
		got = append(got, r.Index)
		if r.Index == 1 {
			return boom
		}
		return nil
	})
	testutil.AssertErrorIs(t, err, boom)
	testutil.AssertEqual(t, got, []int{0, 1})
}

func TestAnalyzeAll(t *testing.T) {
	var snaps []*snapshot.Snapshot
	for i, code := range []string{"h1", "h2", "h3", "h4", "h5", "h6", "h7", "h8"} {
		snaps = append(snaps, snapshot.FromBoard(testutil.MustBoard(t, code+"=wR"), i+1, ""))
	}

	var got []int
	err := AnalyzeAll(snaps, 4, false, func(r ProcessResult) error {
		if r.Error != nil {
			return r.Error
		}
		got = append(got, r.Analysis.Snapshot.Index)
		return nil
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []int{1, 2, 3, 4, 5, 6, 7, 8})
}
