package dataset

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stemgraph/logging"
)

// Result is the outcome of fetching one index.
type Result struct {
	Index  int
	Sample *Sample
	Err    error
}

// loggerOf returns g's own logger when it has one, logging.Logger otherwise.
func loggerOf(g Getter) *zap.SugaredLogger {
	if lg, ok := g.(interface{ Logger() *zap.SugaredLogger }); ok && lg.Logger() != nil {
		return lg.Logger()
	}
	return logging.Logger
}

// Collect fetches ids from g with at most workers concurrent Get calls and
// returns one Result per id, in input order. A failing sample does not stop
// the others. Once ctx is done, ids not yet started get ctx.Err().
// Failures are logged to g's logger when g exposes one (Dataset and
// GraphDataset do), to logging.Logger otherwise.
func Collect(ctx context.Context, g Getter, ids []int, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	log := loggerOf(g)
	results := make([]Result, len(ids))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, id := range ids {
		results[i].Index = id
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			s, err := g.Get(id)
			results[i].Sample, results[i].Err = s, err
			if err != nil {
				log.Warnw("sample failed",
					logging.FieldIndex, id,
					logging.FieldError, err)
			}
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
