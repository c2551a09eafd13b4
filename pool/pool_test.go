// ABOUTME: Tests for the worker pool
// ABOUTME: Verifies every task runs once and results keep their index

package pool

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsAllTasks(t *testing.T) {
	p := NewWorkerPool(3)
	defer p.Close()

	var count atomic.Int64

	for range 100 {
		p.Submit(func() { count.Add(1) })
	}

	p.Wait()

	if got := count.Load(); got != 100 {
		t.Errorf("Expected 100 tasks to run, got %d", got)
	}
}

func TestWorkerPoolDefaultSizeRunsTasks(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()

	var count atomic.Int32
	for range 10 {
		p.Submit(func() { count.Add(1) })
	}

	p.Wait()

	if got := count.Load(); got != 10 {
		t.Errorf("Expected 10 tasks to run on a default-sized pool, got %d", got)
	}
}

func TestWorkerPoolCloseTwice(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close()
}

func TestEachKeepsOrder(t *testing.T) {
	results := make([]int, 50)

	Each(len(results), 4, func(i int) {
		results[i] = i * i
	})

	for i, v := range results {
		if v != i*i {
			t.Fatalf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestEachEmpty(t *testing.T) {
	called := false

	Each(0, 4, func(int) { called = true })

	if called {
		t.Error("Expected fn not to be called for n=0")
	}
}
