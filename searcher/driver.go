package searcher

import (
	"context"
	"sync/atomic"
	"time"

	"wolfhunt/experiments/metrics"
	"wolfhunt/game"
	"wolfhunt/meta"

	"github.com/rs/zerolog/log"
)

type Searcher interface {
	Search(ctx context.Context, b game.Board, p Params) Result
}

// Reply is the one-shot answer to a move request. OK is false when no move
// could be produced in time.
type Reply struct {
	Move       game.Move
	OK         bool
	Score      int
	Generation uint64
	Metric     metrics.SearchMetric
}

// Driver runs searches off the caller's goroutine and tags every request with
// a generation so answers to superseded requests can be recognised.
type Driver struct {
	searcher   Searcher
	margin     time.Duration
	generation atomic.Uint64
}

func NewDriver(s Searcher) *Driver {
	return &Driver{searcher: s, margin: meta.SafetyMargin}
}

// RequestMove starts a search on a snapshot of b. The returned channel
// receives exactly one Reply, at the latest p.TimeLimit plus the safety margin
// after the call when a time limit is set.
func (d *Driver) RequestMove(ctx context.Context, b game.Board, p Params) <-chan Reply {
	gen := d.generation.Add(1)
	replyCh := make(chan Reply, 1)

	go func() {
		if p.TimeLimit > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.TimeLimit+d.margin)
			defer cancel()
		}

		results := make(chan Result, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Msgf("search for %s panicked: %v", p.Role, r)
					close(results)
				}
			}()
			results <- d.searcher.Search(ctx, b, p)
		}()

		select {
		case res, ok := <-results:
			if !ok {
				replyCh <- Reply{Generation: gen}
				return
			}
			if err := ctx.Err(); err != nil {
				log.Warn().Msgf("discarding search for %s: %v", p.Role, err)
				replyCh <- Reply{Generation: gen}
				return
			}
			replyCh <- Reply{
				Move:       res.Move,
				OK:         res.Found,
				Score:      res.Score,
				Generation: gen,
				Metric:     res.Metric,
			}
		case <-ctx.Done():
			log.Warn().Msgf("search for %s gave no move: %v", p.Role, ctx.Err())
			replyCh <- Reply{Generation: gen}
		}
	}()

	return replyCh
}

// Invalidate marks every outstanding request as stale.
func (d *Driver) Invalidate() {
	d.generation.Add(1)
}

// Current reports whether r answers the latest request and nothing has
// invalidated it since.
func (d *Driver) Current(r Reply) bool {
	return r.Generation == d.generation.Load()
}
