package searcher

import (
	"context"
	"slices"
	"time"

	"wolfhunt/experiments/metrics"
	"wolfhunt/game"

	"github.com/rs/zerolog/log"
)

const (
	// Win is the base score of a decided position. The remaining depth is
	// added so faster wins score higher and slower losses lower.
	Win      = 100000
	infinity = 1 << 30
)

// Params is what the caller decides per request: how deep, how long and for
// which side.
type Params struct {
	MaxDepth  int
	TimeLimit time.Duration // <= 0 means no wall-clock limit
	Role      game.Role
}

type Result struct {
	Move   game.Move
	Score  int // From Role's perspective
	Found  bool
	Depth  int
	Metric metrics.SearchMetric
}

type Option func(ab *AlphaBeta)

// AlphaBeta is a negamax search with alpha-beta pruning. Its configuration is
// fixed after New, so a single value may serve concurrent searches.
type AlphaBeta struct {
	evaluators   [3]game.Evaluate // Indexed by game.Role
	now          func() time.Time
	deepening    bool
	wolfSafety   bool
	newCollector func() metrics.Collector
}

func WithEvaluators(hunter, wolf game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if hunter != nil {
			ab.evaluators[game.HunterRole] = hunter
		}
		if wolf != nil {
			ab.evaluators[game.WolfRole] = wolf
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(ab *AlphaBeta) {
		if now != nil {
			ab.now = now
		}
	}
}

func WithIterativeDeepening(enabled bool) Option {
	return func(ab *AlphaBeta) {
		ab.deepening = enabled
	}
}

// WithWolfSafety drops root moves that step a wolf onto a cell a hunter can
// capture next turn, unless every move does.
func WithWolfSafety(enabled bool) Option {
	return func(ab *AlphaBeta) {
		ab.wolfSafety = enabled
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.newCollector = metrics.NewCollector
	}
}

func New(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		now:          time.Now,
		deepening:    true,
		newCollector: metrics.NewDummyCollector,
	}
	ab.evaluators[game.HunterRole] = game.EvaluateHunters
	ab.evaluators[game.WolfRole] = game.EvaluateWolves
	for _, option := range options {
		option(ab)
	}
	return ab
}

// run is the state of a single Search call.
type run struct {
	ctx      context.Context
	role     game.Role
	evaluate game.Evaluate
	now      func() time.Time
	start    time.Time
	limit    time.Duration
	timedOut bool
	metrics  metrics.Collector
}

// expired reports whether the budget or the context has run out. Once it has,
// it stays expired for the rest of the search.
func (r *run) expired() bool {
	if r.timedOut {
		return true
	}
	if r.ctx.Err() != nil || (r.limit > 0 && r.now().Sub(r.start) > r.limit) {
		r.timedOut = true
		r.metrics.SetTimedOut(true)
	}
	return r.timedOut
}

// Search picks a move for p.Role on b. It always returns a move when one
// exists, even if the budget runs out during the first iteration.
func (ab *AlphaBeta) Search(ctx context.Context, b game.Board, p Params) Result {
	if p.Role != game.HunterRole && p.Role != game.WolfRole {
		log.Warn().Msgf("search requested for %s", p.Role)
		return Result{}
	}
	r := &run{
		ctx:      ctx,
		role:     p.Role,
		evaluate: ab.evaluators[p.Role],
		now:      ab.now,
		start:    ab.now(),
		limit:    p.TimeLimit,
		metrics:  ab.newCollector(),
	}
	maxDepth := max(p.MaxDepth, 1)
	r.metrics.Start(p.Role, maxDepth, p.TimeLimit)

	moves := OrderMoves(game.LegalMoves(b, p.Role))
	if p.Role == game.WolfRole && ab.wolfSafety {
		moves = safeMoves(b, moves)
	}
	if len(moves) == 0 || r.evaluate == nil {
		return Result{Metric: r.metrics.Complete()}
	}

	first := maxDepth
	if ab.deepening {
		first = 1
	}

	var res Result
	for depth := first; depth <= maxDepth; depth++ {
		best, score, searched := r.searchRoot(b, moves, depth)
		if searched > 0 || !res.Found {
			res.Move, res.Score, res.Found, res.Depth = best, score, true, depth
			r.metrics.SetDepth(depth)
		}
		log.Debug().Msgf("%s depth %d: %s scored %d over %d of %d root moves", p.Role, depth, best, score, searched, len(moves))
		if r.timedOut {
			break
		}
		moves = promote(moves, res.Move)
	}
	res.Metric = r.metrics.Complete()
	return res
}

// searchRoot searches every root move to depth and returns the best one along
// with how many root moves were fully searched. Branches cut short by the
// budget do not count; if the first one is, its score is returned as is.
func (r *run) searchRoot(b game.Board, moves []game.Move, depth int) (game.Move, int, int) {
	best, bestScore := moves[0], -infinity
	alpha := -infinity
	searched := 0
	for i, m := range moves {
		if i > 0 && r.expired() {
			break
		}
		score := -r.negamax(b.Play(m), depth-1, -infinity, -alpha, r.role.Opponent())
		if r.timedOut {
			if searched == 0 {
				bestScore = score
			}
			break
		}
		searched++
		if score > bestScore {
			best, bestScore = m, score
		}
		alpha = max(alpha, score)
	}
	return best, bestScore, searched
}

// negamax returns the score of b for toMove.
func (r *run) negamax(b game.Board, depth, alpha, beta int, toMove game.Role) int {
	r.metrics.AddNode()

	if result := game.CheckGameOver(b); result.Over {
		if result.Winner == toMove {
			return Win + depth
		}
		return -(Win + depth)
	}
	if depth == 0 || r.expired() {
		return r.static(b, toMove)
	}

	moves := OrderMoves(game.LegalMoves(b, toMove))
	if len(moves) == 0 { // Side to move is stuck
		return -(Win + depth)
	}

	best := -infinity
	for _, m := range moves {
		score := -r.negamax(b.Play(m), depth-1, -beta, -alpha, toMove.Opponent())
		best = max(best, score)
		alpha = max(alpha, score)
		if alpha >= beta {
			r.metrics.AddCutoff()
			break
		}
	}
	return best
}

// static scores b with the searching role's evaluator, negated when the
// opponent is to move.
func (r *run) static(b game.Board, toMove game.Role) int {
	score := r.evaluate(b)
	if toMove != r.role {
		return -score
	}
	return score
}

// promote moves best to the front and keeps the order of the rest.
func promote(moves []game.Move, best game.Move) []game.Move {
	i := slices.Index(moves, best)
	if i <= 0 {
		return moves
	}
	out := make([]game.Move, 0, len(moves))
	out = append(out, best)
	out = append(out, moves[:i]...)
	return append(out, moves[i+1:]...)
}

// safeMoves keeps the wolf moves that do not land on a capturable cell. All
// moves are kept when none is safe.
func safeMoves(b game.Board, moves []game.Move) []game.Move {
	safe := make([]game.Move, 0, len(moves))
	for _, m := range moves {
		next := b.Play(m)
		exposed := false
		for _, h := range next.Positions(game.Hunter) {
			if game.CanCapture(next, h, m.To) {
				exposed = true
				break
			}
		}
		if !exposed {
			safe = append(safe, m)
		}
	}
	if len(safe) == 0 {
		return moves
	}
	return safe
}
