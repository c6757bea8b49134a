package listdecoding

import (
	"context"

	"student_25_listdecoding/polynomial"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// Request describes one received word to decode.
type Request struct {
	N                     int
	K                     int
	Word                  []Point
	MinCorrectValuesCount int
}

// DecodeAll decodes independent received words concurrently, with at most
// Config.Workers decodes in flight. The i-th result belongs to the i-th
// request. The first failure cancels the requests not yet started and is
// returned.
func (d *Decoder) DecodeAll(ctx context.Context, requests []Request) ([][]*polynomial.Polynomial, error) {
	results := make([][]*polynomial.Polynomial, len(requests))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.conf.Workers)

	for i, req := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := d.Decode(req.N, req.K, req.Word, req.MinCorrectValuesCount)
			if err != nil {
				return xerrors.Errorf("request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
