// Package async offloads synchronous godex calls onto a worker goroutine,
// reporting completion over a channel. It adds no parallelism within a
// single parse — the pool DAG in package pool must still resolve in order —
// it only lets a caller avoid blocking its own goroutine on one File.
package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run executes fn on a single errgroup goroutine and reports its error (or
// nil) on the returned channel. If ctx is already canceled when the
// goroutine starts, fn is not called and the channel receives ctx.Err();
// a cancellation after fn has started does not interrupt it, and the
// channel receives fn's own result.
func Run(ctx context.Context, fn func() error) <-chan error {
	done := make(chan error, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		return fn()
	})

	go func() {
		done <- g.Wait()
	}()

	return done
}

// RunAll runs every fn concurrently, one errgroup goroutine each, and
// reports the first error encountered (or nil once all succeed). A
// canceled ctx stops the remaining goroutines early via gctx.
func RunAll(ctx context.Context, fns ...func() error) <-chan error {
	done := make(chan error, 1)

	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		fn := fn
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn()
		})
	}

	go func() {
		done <- g.Wait()
	}()

	return done
}
