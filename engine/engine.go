package engine

import (
	"context"
	"errors"

	"wolfhunt/experiments/metrics"
	"wolfhunt/game"
)

var errNoMove = errors.New("agent has no move")

// Reasons a game ends
const (
	ReasonWolvesReduced = "wolves reduced"
	ReasonTrapped       = "hunters trapped"
	ReasonTurnLimit     = "turn limit"
	ReasonRepetition    = "repetition"
	ReasonStalled       = "stalled"
	ReasonCancelled     = "cancelled"
)

type Engine interface {
	// Run plays a game till there's a winner or it is adjudicated a draw; a draw has no winner
	Run(ctx context.Context) (winner game.Role, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
