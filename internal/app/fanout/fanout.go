// Package fanout runs independent CMS reads side by side with a fixed
// worker budget. The home page issues four section queries per request, and
// the sitemap issues one list query per document type and locale; both go
// through here so that a slow section does not serialize the others.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines.
// Results keep the order of items.
//
// An item still waiting for a worker slot when ctx is canceled records
// ctx.Err() without calling fn. Run blocks until every item is settled and
// returns an empty non-nil slice for empty input. maxWorkers below 1 is
// treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// Task is a named unit of work that stores its own output, typically by
// assigning to a field of a struct the caller owns. Each task must write to
// a distinct location.
type Task struct {
	Name string
	Fn   func(ctx context.Context) error
}

// RunTasks runs tasks with at most maxWorkers in flight and returns the
// failures keyed by task name. The map is nil when every task succeeded.
func RunTasks(ctx context.Context, maxWorkers int, tasks ...Task) map[string]error {
	results := Run(ctx, maxWorkers, tasks, func(ctx context.Context, t Task) (struct{}, error) {
		return struct{}{}, t.Fn(ctx)
	})

	var failed map[string]error
	for i, r := range results {
		if r.Err == nil {
			continue
		}
		if failed == nil {
			failed = make(map[string]error)
		}
		failed[tasks[i].Name] = r.Err
	}
	return failed
}
