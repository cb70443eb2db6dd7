// Package worker provides parallel execution for large inputs: chunked
// grouping of a token stream and batch value calculation over phrase lists.
package worker

import (
	"context"
	"sync"

	"github.com/ashmulev/gematria/internal/group"
)

// ChunkJob groups one slice of a token stream. Index records the chunk's
// position so partial results can be merged back in stream order.
type ChunkJob struct {
	Index  int
	Words  []string
	Engine *group.Engine
}

// ChunkResult carries a chunk's grouped words back to the merge step.
type ChunkResult struct {
	Index  int
	Groups *group.Result
	Err    error
}

// Pool runs chunk jobs over a fixed number of goroutines. The context shared
// by the engines is read-only, so workers need no synchronization beyond the
// job and result channels.
type Pool struct {
	workers   int
	jobs      chan ChunkJob
	results   chan ChunkResult
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan ChunkJob, workers*2),
		results: make(chan ChunkResult, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			res := ChunkResult{Index: job.Index, Groups: job.Engine.GroupWords(job.Words)}
			select {
			case p.results <- res:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a chunk for grouping. Both channels are bounded, so the
// submitting goroutine must not be the one draining Wait: submit from a
// separate goroutine and call Close when done.
func (p *Pool) Submit(job ChunkJob) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Close signals that no more jobs will be submitted.
func (p *Pool) Close() {
	close(p.jobs)
}

// Wait drains results until the workers have finished the closed job queue,
// then returns them. Results arrive in completion order; callers re-order by
// Index before merging.
func (p *Pool) Wait() []ChunkResult {
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []ChunkResult
	for res := range p.results {
		results = append(results, res)
	}
	return results
}

// Shutdown stops the pool immediately, discarding queued jobs.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
