// Package worker provides the concurrency primitives behind batch
// submission: a fixed-size task pool and a per-key rate limiter.
package worker

import (
	"context"
	"sync"
)

// Task is a unit of work executed by the pool.
type Task interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one task.
type Result interface {
	Err() error
}

// Pool runs tasks on a fixed number of workers.
type Pool struct {
	workers   int
	tasks     chan Task
	results   chan Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given worker count (minimum one).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, workers*2),
		results: make(chan Result, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			result := task.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit enqueues a task. It is a no-op after Shutdown.
func (p *Pool) Submit(task Task) {
	select {
	case <-p.ctx.Done():
	case p.tasks <- task:
	}
}

// Wait closes the task queue, waits for the workers to drain it, and
// returns all results.
func (p *Pool) Wait() []Result {
	close(p.tasks)

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}
	return results
}

// Shutdown cancels outstanding work immediately.
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
