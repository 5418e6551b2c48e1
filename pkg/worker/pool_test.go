package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name      string
		workers   int
		rateLimit int
		setup     func(*testing.T) []Task
		validate  func(*testing.T, []Result)
		wantErr   bool
	}{
		{
			name:    "basic task processing",
			workers: 4,
			setup: func(t *testing.T) []Task {
				tasks := make([]Task, 8)
				for i := 0; i < 8; i++ {
					i := i
					tasks[i] = Task{
						ID: i,
						Execute: func(ctx context.Context) (Result, error) {
							return Result{ID: i, Data: i * 2}, nil
						},
					}
				}
				return tasks
			},
			validate: func(t *testing.T, results []Result) {
				assert.Len(t, results, 8)
				for i, r := range results {
					assert.Equal(t, i*2, r.Data)
				}
			},
		},
		{
			name:      "rate limited processing",
			workers:   4,
			rateLimit: 50,
			setup: func(t *testing.T) []Task {
				tasks := make([]Task, 5)
				for i := 0; i < 5; i++ {
					i := i
					tasks[i] = Task{
						ID: i,
						Execute: func(ctx context.Context) (Result, error) {
							return Result{ID: i, Data: i}, nil
						},
					}
				}
				return tasks
			},
			validate: func(t *testing.T, results []Result) {
				assert.Len(t, results, 5)
			},
		},
		{
			name:    "task error surfaces from Wait",
			workers: 2,
			setup: func(t *testing.T) []Task {
				return []Task{
					{
						ID: 1,
						Execute: func(ctx context.Context) (Result, error) {
							return Result{}, errors.New("planned error")
						},
					},
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := NewPool(Config{
				Workers:   tt.workers,
				RateLimit: tt.rateLimit,
			})
			require.NoError(t, err)

			require.NoError(t, pool.Start(context.Background()))

			for _, task := range tt.setup(t) {
				require.NoError(t, pool.Submit(task))
			}

			results, err := pool.Wait()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, results)
			}
		})
	}
}

func TestWorkerPoolResultOrder(t *testing.T) {
	pool, err := NewPool(Config{Workers: 4})
	require.NoError(t, err)
	require.NoError(t, pool.Start(context.Background()))

	// Tasks finish out of order; results still come back in submission order.
	for i := 0; i < 10; i++ {
		i := i
		require.NoError(t, pool.Submit(Task{
			ID: i,
			Execute: func(ctx context.Context) (Result, error) {
				time.Sleep(time.Duration(10-i) * time.Millisecond)
				return Result{ID: i, Data: i}, nil
			},
		}))
	}

	results, err := pool.Wait()
	require.NoError(t, err)
	require.Len(t, results, 10)
	for i, r := range results {
		assert.Equal(t, i, r.Data)
	}
}

func TestWorkerPoolManyTasks(t *testing.T) {
	// Far more tasks than workers and any internal buffering; completed
	// results must never block the workers from draining the queue.
	const taskCount = 100

	pool, err := NewPool(Config{Workers: 2})
	require.NoError(t, err)
	require.NoError(t, pool.Start(context.Background()))

	for i := 0; i < taskCount; i++ {
		i := i
		require.NoError(t, pool.Submit(Task{
			ID: i,
			Execute: func(ctx context.Context) (Result, error) {
				return Result{ID: i, Data: i}, nil
			},
		}))
	}

	results, err := pool.Wait()
	require.NoError(t, err)
	require.Len(t, results, taskCount)
	for i, r := range results {
		assert.Equal(t, i, r.Data)
	}
}

func TestWorkerPoolLifecycle(t *testing.T) {
	pool, err := NewPool(Config{Workers: 2})
	require.NoError(t, err)

	// Submit before Start fails
	err = pool.Submit(Task{ID: 1})
	assert.Error(t, err)

	require.NoError(t, pool.Start(context.Background()))

	// Double start fails
	assert.Error(t, pool.Start(context.Background()))

	assert.Equal(t, StatusIdle, pool.GetStats().Status)

	require.NoError(t, pool.Stop())
	assert.Equal(t, StatusStopped, pool.GetStats().Status)

	// Stop is idempotent
	assert.NoError(t, pool.Stop())
}

func TestWorkerPoolStopAfterWait(t *testing.T) {
	p, err := NewPool(Config{Workers: 2})
	require.NoError(t, err)
	require.NoError(t, p.Start(context.Background()))

	_, err = p.Wait()
	require.NoError(t, err)

	// Stop after Wait must still release the derived context.
	require.NoError(t, p.Stop())
	assert.Error(t, p.(*pool).ctx.Err())
}

func TestNewPoolValidation(t *testing.T) {
	_, err := NewPool(Config{Workers: 0})
	assert.Error(t, err)

	_, err = NewPool(Config{Workers: -1})
	assert.Error(t, err)

	_, err = NewPool(Config{Workers: 2, RateLimit: -1})
	assert.Error(t, err)
}
