// SPDX-License-Identifier: MIT

package bellman

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEach runs fn(k) for k in [0, n) on at most workers goroutines and
// waits for all of them. The first error stops scheduling of further tasks
// and is returned.
//
// ctx values are kept but its cancellation is not: a sweep is either
// completed or aborted by its own failure.
func forEach(ctx context.Context, n, workers int, fn func(k int) error) error {
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.SetLimit(workers)

	for k := 0; k < n; k++ {
		if gctx.Err() != nil {
			break // a task failed; Wait reports it
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(k)
		})
	}

	return g.Wait()
}
