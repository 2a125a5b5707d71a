package agent

import (
	"context"

	"wolfhunt/experiments/metrics"
	"wolfhunt/game"
)

// Decision is an agent's answer for one turn. OK is false when the agent has
// no move to offer.
type Decision struct {
	Move   game.Move
	OK     bool
	Metric metrics.SearchMetric
}

type Agent interface {
	// FindMove returns a move for the side to move in state and performance metrics (if collected)
	FindMove(ctx context.Context, state *game.GameState) Decision
}
