package collate

import (
	"context"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-collate/logger"
)

// minKeysPerTask keeps tiny batches from paying for goroutine hand-off.
const minKeysPerTask = 64

// BatchOption configures BisectAll.
type BatchOption func(*batchOptions)

type batchOptions struct {
	concurrency int
}

// WithConcurrency caps the number of goroutines BisectAll uses.
// Values below 1 fall back to runtime.GOMAXPROCS(0).
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		o.concurrency = n
	}
}

// BisectAll bisects rows for every key and returns the insertion points in key
// order. Keys are split into contiguous chunks that are searched on a bounded
// worker pool; rows are shared read-only between the workers, so they must not
// be mutated until BisectAll returns.
//
// If ctx is cancelled the remaining keys are skipped and ctx's error is returned.
func (c *Collator[T]) BisectAll(
	ctx context.Context, rows Collection[T], keys [][]T, side Side, opts ...BatchOption,
) ([]int, error) {
	o := batchOptions{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	results := make([]int, len(keys))

	chunk := max(minKeysPerTask, (len(keys)+o.concurrency-1)/o.concurrency)
	if len(keys) <= chunk {
		if err := c.bisectChunk(ctx, rows, keys, side, results); err != nil {
			return nil, err
		}

		return results, nil
	}

	logger.Get(ctx).Debug("bisecting key batch",
		"collator", c.name, "side", side.String(), "keys", len(keys), "rows", rows.Len(),
		"concurrency", o.concurrency, "chunk", chunk)

	pool := pond.NewPool(o.concurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for from := 0; from < len(keys); from += chunk {
		to := min(from+chunk, len(keys))

		group.SubmitErr(func() error {
			return c.bisectChunk(ctx, rows, keys[from:to], side, results[from:to])
		})
	}

	err := group.Wait()

	// Tasks the pool dropped after cancellation report a pool error rather than ctx's.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (c *Collator[T]) bisectChunk(ctx context.Context, rows Collection[T], keys [][]T, side Side, out []int) error {
	for i, key := range keys {
		if i%minKeysPerTask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		out[i] = c.bisect(rows, key, side)
	}

	return nil
}
