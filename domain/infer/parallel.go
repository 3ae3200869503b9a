package infer

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// InferColumnsParallel runs one series inference per column concurrently.
// Column distributions are independent, so the only shared state is the
// engine's registry, which is read-only for the duration of the pass. The
// caller must not register or unregister converters while this runs.
// Limit applies per column (equivalent to a row limit on the transposed
// matrix). Cancelling ctx abandons unstarted columns and returns the
// context's error.
func (e *Engine) InferColumnsParallel(ctx context.Context, columns [][]string, opts Options) ([]*Types, error) {
	infos := make([]*Types, len(columns))

	g, ctx := errgroup.WithContext(ctx)
	for j, col := range columns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			infos[j] = e.InferSeries(slices.Values(col), opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// Transpose converts a row-oriented matrix into columns sized by the first
// row's width, for use with InferColumnsParallel. Cells beyond the first
// row's width are dropped; missing cells in narrower rows are skipped.
func Transpose(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	cols := make([][]string, len(rows[0]))
	for j := range cols {
		cols[j] = make([]string, 0, len(rows))
	}
	for _, row := range rows {
		for j := range cols {
			if j < len(row) {
				cols[j] = append(cols[j], row[j])
			}
		}
	}
	return cols
}
