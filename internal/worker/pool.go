// Package worker provides a worker pool for analysing snapshots in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/fourplay-go/internal/processing"
	"github.com/lgbarn/fourplay-go/internal/snapshot"
)

// WorkItem represents a snapshot to be analysed.
type WorkItem struct {
	Snapshot *snapshot.Snapshot
	Index    int // Position in the input stream, 0-based
}

// ProcessResult represents the result of analysing a snapshot.
type ProcessResult struct {
	Index    int
	Analysis *processing.Analysis // nil when Error is set
	Error    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// AnalyzeFunc returns a ProcessFunc that builds and analyses each snapshot.
func AnalyzeFunc(skipBad bool) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		a, err := processing.AnalyzeSnapshot(item.Snapshot, skipBad)
		return ProcessResult{Index: item.Index, Analysis: a, Error: err}
	}
}

// Pool fans snapshots out to a fixed set of goroutines. Results arrive in
// completion order; use Ordered to restore input order.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a snapshot, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip every item they receive from now on. Skipped
// items produce no result, so a consumer waiting on a specific index must
// give up once it has stopped the pool.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
