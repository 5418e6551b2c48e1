/*
Package worker provides a worker pool for concurrent task processing with
optional rate limiting and context cancellation. The staging phase uses it to
copy the generator tree into scratch space with bounded parallelism.

Basic usage:

	pool, err := worker.NewPool(worker.Config{
		Workers:   4,
		RateLimit: 100, // ops/sec, 0 for unlimited
	})

	pool.Start(ctx)
	pool.Submit(worker.Task{
		ID: 1,
		Execute: func(ctx context.Context) (worker.Result, error) {
			return worker.Result{ID: 1, Data: "copied"}, nil
		},
	})
	results, err := pool.Wait()
*/
package worker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Task represents a unit of work to be processed by the worker pool
type Task struct {
	// ID identifies the task in error messages
	ID int

	// Execute performs the actual work. It receives the pool's context for
	// cancellation support.
	Execute func(context.Context) (Result, error)
}

// Result represents the output of a processed task
type Result struct {
	// ID matches the task ID that produced this result
	ID int

	// Data holds the actual result data
	Data interface{}

	// order is used internally to return results in submission order
	order int
}

// Config holds the configuration for the worker pool
type Config struct {
	// Workers is the number of concurrent workers
	Workers int

	// RateLimit is the maximum number of operations per second (0 for unlimited)
	RateLimit int
}

// Pool defines the interface for a worker pool
type Pool interface {
	// Start initializes and starts the worker pool
	Start(context.Context) error

	// Submit adds a task to the pool for processing
	Submit(Task) error

	// Wait blocks until all submitted tasks are processed and returns the
	// results in submission order, or the first task error
	Wait() ([]Result, error)

	// GetStats returns current statistics about the pool
	GetStats() Stats

	// Stop shuts down the pool
	Stop() error
}

type taskWithOrder struct {
	Task
	order int
}

type pool struct {
	config  Config
	tasks   chan taskWithOrder
	errors  chan error
	limiter *rate.Limiter

	resultsMu sync.Mutex
	results   []Result

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	started   bool
	stopped   bool
	taskOrder int
	startTime time.Time

	activeWorkers  atomic.Int32
	completedTasks atomic.Int64
	failedTasks    atomic.Int64
}

// NewPool creates a new worker pool with the given configuration
func NewPool(config Config) (Pool, error) {
	if config.Workers <= 0 {
		return nil, fmt.Errorf("number of workers must be positive")
	}
	if config.RateLimit < 0 {
		return nil, fmt.Errorf("rate limit must be non-negative")
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	return &pool{
		config:  config,
		tasks:   make(chan taskWithOrder, config.Workers*2),
		errors:  make(chan error, config.Workers),
		limiter: limiter,
	}, nil
}

// Start initializes and starts the worker pool
func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("pool already started")
	}

	p.ctx, p.cancel = context.WithCancel(ctx)
	p.started = true
	p.startTime = time.Now()

	for i := 0; i < p.config.Workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return nil
}

// Submit adds a task to the pool for processing
func (p *pool) Submit(task Task) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return fmt.Errorf("pool not started")
	}
	if p.stopped {
		p.mu.Unlock()
		return fmt.Errorf("pool already stopped")
	}
	order := p.taskOrder
	p.taskOrder++
	p.mu.Unlock()

	select {
	case <-p.ctx.Done():
		return fmt.Errorf("pool is shutting down: %w", p.ctx.Err())
	case p.tasks <- taskWithOrder{Task: task, order: order}:
		return nil
	}
}

// Wait closes the task queue, blocks until the workers drain it, and returns
// the collected results sorted by submission order.
func (p *pool) Wait() ([]Result, error) {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return nil, fmt.Errorf("pool not started")
	}
	if !p.stopped {
		close(p.tasks)
		p.stopped = true
	}
	p.mu.Unlock()

	p.wg.Wait()

	p.resultsMu.Lock()
	results := make([]Result, len(p.results))
	copy(results, p.results)
	p.resultsMu.Unlock()

	sort.Slice(results, func(i, j int) bool {
		return results[i].order < results[j].order
	})

	select {
	case err := <-p.errors:
		return nil, err
	default:
		return results, nil
	}
}

// Stop cancels outstanding work and shuts the pool down.
func (p *pool) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.stopped {
		p.stopped = true
		if p.cancel != nil {
			p.cancel()
		}
		return nil
	}

	p.stopped = true
	p.cancel()
	close(p.tasks)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(500 * time.Millisecond):
		return fmt.Errorf("shutdown timed out")
	}
}

// GetStats returns current statistics about the pool
func (p *pool) GetStats() Stats {
	p.mu.Lock()
	started := p.started
	stopped := p.stopped
	startTime := p.startTime
	p.mu.Unlock()

	active := int(p.activeWorkers.Load())
	queued := len(p.tasks)

	status := StatusStopped
	if started && !stopped {
		if active > 0 || queued > 0 {
			status = StatusProcessing
		} else {
			status = StatusIdle
		}
	}

	var uptime time.Duration
	if started {
		uptime = time.Since(startTime)
	}

	return Stats{
		ActiveWorkers:  active,
		QueuedTasks:    queued,
		CompletedTasks: int(p.completedTasks.Load()),
		FailedTasks:    int(p.failedTasks.Load()),
		Status:         status,
		Uptime:         uptime,
	}
}

// worker processes tasks until the queue is closed or the context cancelled.
func (p *pool) worker() {
	defer p.wg.Done()

	for task := range p.tasks {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		p.activeWorkers.Add(1)

		if p.limiter != nil {
			if err := p.limiter.Wait(p.ctx); err != nil {
				p.activeWorkers.Add(-1)
				p.failedTasks.Add(1)
				select {
				case p.errors <- fmt.Errorf("rate limiter: %w", err):
				default:
				}
				return
			}
		}

		result, err := task.Execute(p.ctx)
		result.order = task.order
		p.activeWorkers.Add(-1)

		if err != nil {
			p.failedTasks.Add(1)
			select {
			case p.errors <- fmt.Errorf("task %d failed: %w", task.ID, err):
			default:
				// error channel full, keep processing
			}
			continue
		}

		p.completedTasks.Add(1)

		p.resultsMu.Lock()
		p.results = append(p.results, result)
		p.resultsMu.Unlock()
	}
}
