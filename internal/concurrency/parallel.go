package concurrency

import (
	"context"
	"sync"
	"time"
)

// Options configures a bounded batch stage.
type Options struct {
	// MaxWorkers is the number of concurrent workers.
	MaxWorkers int
	// TaskTimeout bounds each item with its own sub-context deadline.
	// Zero means no per-task deadline.
	TaskTimeout time.Duration
}

// DefaultOptions returns the pool size used by both batch stages.
func DefaultOptions() Options {
	return Options{
		MaxWorkers: 5,
	}
}

// Result is one item's outcome, tagged with the input index so callers can
// re-associate completion-ordered output with its source item.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Collect runs itemFunc over items on a bounded worker pool and returns one
// Result per item in completion order, NOT input order. Callers must join by
// Result.Index (or by a key carried inside R), never by position.
// An item's error is carried in its Result; it never stops sibling tasks.
func Collect[T any, R any](
	ctx context.Context,
	items []T,
	opts Options,
	itemFunc func(ctx context.Context, item T) (R, error),
) []Result[R] {
	if len(items) == 0 {
		return nil
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultOptions().MaxWorkers
	}

	// Use fewer workers if we have fewer items
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan int, len(items))
	results := make(chan Result[R], len(items))

	// Start workers
	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					// Drain remaining jobs as failures so every item
					// still gets exactly one Result.
					results <- Result[R]{Index: i, Err: ctx.Err()}
				default:
					results <- runOne(ctx, i, items[i], opts.TaskTimeout, itemFunc)
				}
			}
		}()
	}

	// Send jobs to workers
	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result[R], 0, len(items))
	for res := range results {
		out = append(out, res)
	}
	return out
}

func runOne[T any, R any](
	ctx context.Context,
	index int,
	item T,
	timeout time.Duration,
	itemFunc func(ctx context.Context, item T) (R, error),
) Result[R] {
	taskCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	v, err := itemFunc(taskCtx, item)
	return Result[R]{Index: index, Value: v, Err: err}
}
