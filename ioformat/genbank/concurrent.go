package genbank

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/genomancer/plasmidcore/feature"
)

// ParseAllConcurrent parses one Construct from each reader concurrently,
// the same fan-out-then-join shape as the teacher's bio/bio.go
// ManyToChannel: one goroutine per input, golang.org/x/sync/errgroup to
// wait for all of them and return the first error. Parses already running
// are not cancelled; they run to completion. This is opt-in I/O outside
// the single-threaded engine boundary (spec.md S5) -- the per-record
// parsing itself stays synchronous.
func ParseAllConcurrent(ctx context.Context, readers []io.Reader) ([]feature.Construct, error) {
	results := make([]feature.Construct, len(readers))
	group, _ := errgroup.WithContext(ctx)
	for i, r := range readers {
		i, r := i, r
		group.Go(func() error {
			c, err := Parse(r)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
