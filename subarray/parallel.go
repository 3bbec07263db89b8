package subarray

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// EnumerateParallel is Enumerate with the outer loop spread over up to
// workers goroutines.
//
// Row i (all subarrays starting at index i) is written into its own fixed
// range of the result, so the output order matches Enumerate exactly.
// workers <= 1 runs inline. If ctx is cancelled no further rows are started
// and ctx.Err() is returned.
func EnumerateParallel[T any](ctx context.Context, s []T, workers int) ([][]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 1 {
		return Enumerate(s), nil
	}

	n := len(s)
	out := make([][]T, Count(n))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := 0; i < n; i++ {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			fillRow(out[rowOffset(n, i):rowOffset(n, i+1)], s, i)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// fillRow writes copies of s[i:i+1], s[i:i+2], ... s[i:len(s)] into dst.
func fillRow[T any](dst [][]T, s []T, i int) {
	for k := range dst {
		sub := make([]T, k+1)
		copy(sub, s[i:i+k+1])
		dst[k] = sub
	}
}
