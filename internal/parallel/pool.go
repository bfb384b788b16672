// Package parallel implements the rendering core's processor pool (spec
// §9): a fixed set of worker goroutines that execute typed job batches
// (vertex, fragment, blit, clear) to completion before the calling
// thread proceeds.
//
// WorkerPool is a work-stealing scheduler: a worker idle on its own
// queue steals from a neighbor instead of blocking. ProcessorPool (in
// processor.go) is the per-draw-phase barrier built on top of it: every
// DispatchVertex/Fragment/Blit/Clear call submits its row-band jobs to
// the pool's queues via ExecuteAllCtx and blocks until they all finish,
// surfacing the first job error (if any) rather than a bespoke
// completion counter (see DESIGN.md).
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for parallel rendering.
//
// The pool distributes work items across multiple workers, each with their own
// queue. Workers can steal work from other workers when their own queue is empty.
// This helps balance load when some tasks are slower than others.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// queueSize is the buffer size for each worker's queue.
	queueSize int
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Buffer size: 2-4x workers helps hide latency (from research)
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
		queueSize:  queueSize,
	}

	// Create per-worker queues
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	// Start worker goroutines
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			// Try to steal work from another worker
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work available anywhere, block on own queue
				select {
				case <-p.done:
					p.drainQueue(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	// Try each other worker's queue once
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case work := <-p.workQueues[i]:
			return work
		default:
			// Queue is empty, try next
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all to complete.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))

	// Wrap each work item to signal completion
	for i, fn := range work {
		workerID := i % p.workers
		workFn := fn // Capture for closure

		wrappedWork := func() {
			defer completionWG.Done()
			workFn()
		}

		// Submit to worker's queue (may block if queue is full)
		select {
		case p.workQueues[workerID] <- wrappedWork:
			// Successfully queued
		case <-p.done:
			// Pool is closing, execute remaining work directly
			wrappedWork()
		}
	}

	completionWG.Wait()
}

// ExecuteAllCtx runs a batch of context-aware, fallible jobs through the
// same work-stealing queues as ExecuteAll, skipping jobs once ctx is
// already done or a prior job in the batch has failed, and returns the
// first error encountered (if any) once every job has finished. This is
// what ProcessorPool.dispatch uses for every draw-call phase, so the
// pool's queues and steal loop run on the actual rendering hot path, not
// only in this package's own tests.
func (p *WorkerPool) ExecuteAllCtx(ctx context.Context, jobs []func(ctx context.Context) error) error {
	if len(jobs) == 0 || !p.running.Load() {
		return ctx.Err()
	}

	var mu sync.Mutex
	var firstErr error

	work := make([]func(), len(jobs))
	for i, job := range jobs {
		job := job
		work[i] = func() {
			mu.Lock()
			failed := firstErr != nil
			mu.Unlock()
			if failed || ctx.Err() != nil {
				return
			}
			if err := job(ctx); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}
	}

	p.ExecuteAll(work)

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		// Already closed
		return
	}

	// Signal workers to stop
	close(p.done)

	// Wait for all workers to finish
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
