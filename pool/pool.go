// ABOUTME: Small worker pool for fanning out blocking file reads
// ABOUTME: Used to read audio tags for the catalog in parallel while keeping order

// Package pool provides a fixed-size goroutine pool with submit-and-wait semantics.
package pool

import (
	"runtime"
	"sync"
)

// WorkerPool manages a pool of worker goroutines for parallel task execution
type WorkerPool struct {
	taskChan chan func()
	workerWg sync.WaitGroup // tracks worker goroutines lifetime
	taskWg   sync.WaitGroup // tracks submitted tasks completion
	closed   sync.Once
}

// NewWorkerPool creates a pool with the given number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		taskChan: make(chan func(), workers*2),
	}

	for range workers {
		pool.workerWg.Add(1)

		go func() {
			defer pool.workerWg.Done()

			for task := range pool.taskChan {
				task()
				pool.taskWg.Done()
			}
		}()
	}

	return pool
}

// Submit adds a task to the pool
// Blocks if the task channel is full
func (p *WorkerPool) Submit(task func()) {
	p.taskWg.Add(1)
	p.taskChan <- task
}

// Wait blocks until all submitted tasks have completed
func (p *WorkerPool) Wait() {
	p.taskWg.Wait()
}

// Close shuts down the worker pool and waits for all workers to exit.
// Safe to call more than once.
func (p *WorkerPool) Close() {
	p.closed.Do(func() {
		close(p.taskChan)
	})
	p.workerWg.Wait()
}

// Each runs fn(i) for every i in [0, n) on a temporary pool and waits for all of them.
// Results are expected to be written to index i of a caller-owned slice.
func Each(n, workers int, fn func(i int)) {
	if n == 0 {
		return
	}

	if workers <= 0 || workers > n {
		workers = min(runtime.NumCPU(), n)
	}

	p := NewWorkerPool(workers)
	defer p.Close()

	for i := range n {
		p.Submit(func() { fn(i) })
	}

	p.Wait()
}
