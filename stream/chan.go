package stream

import (
	"context"
	"iter"

	"github.com/amp-labs/amp-collate/compare"
	"github.com/amp-labs/amp-collate/logger"
)

// Subsystem names the logger subsystem the channel forms log under.
const Subsystem = "stream"

// MergeChan is Merge over channels. The returned channel is closed once both
// inputs are closed or ctx is done, whichever comes first. After cancellation
// the output may end before the inputs are drained.
func MergeChan[T any](ctx context.Context, c compare.Comparator[T], left, right <-chan T) <-chan T {
	return pipe(ctx, "merge", Merge(c, recv(ctx, left), recv(ctx, right)))
}

// DiffChan is Diff over channels, with the same closing rules as MergeChan.
func DiffChan[T any](ctx context.Context, c compare.Comparator[T], left, right <-chan T) <-chan T {
	return pipe(ctx, "diff", Diff(c, recv(ctx, left), recv(ctx, right)))
}

func recv[T any](ctx context.Context, ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-ch:
				if !ok || !yield(v) {
					return
				}
			}
		}
	}
}

func pipe[T any](ctx context.Context, op string, seq iter.Seq[T]) <-chan T {
	out := make(chan T)
	logCtx := logger.With(logger.WithSubsystem(ctx, Subsystem), "op", op)

	go func() {
		defer close(out)

		emitted := 0

		for v := range seq {
			select {
			case out <- v:
				emitted++
			case <-ctx.Done():
				logger.Get(logCtx).Debug("collated stream cancelled",
					"emitted", emitted, "error", ctx.Err())

				return
			}
		}

		if err := ctx.Err(); err != nil {
			logger.Get(logCtx).Debug("collated stream cancelled",
				"emitted", emitted, "error", err)
		}
	}()

	return out
}
