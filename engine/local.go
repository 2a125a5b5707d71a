package engine

import (
	"context"
	"time"

	"wolfhunt/experiments/metrics"
	"wolfhunt/game"
	"wolfhunt/meta"
	"wolfhunt/searcher/agent"

	"github.com/rs/zerolog/log"
)

type position struct {
	hash game.StateHash
	turn game.Role
}

var _ Engine = (*LocalGame)(nil)

type LocalGame struct {
	State  *game.GameState
	Agents [3]agent.Agent // Indexed by game.Role
}

// LocalEngine sets up a game from the starting position between two agents in
// the same process.
func LocalEngine(hunter, wolf agent.Agent) *LocalGame {
	if hunter == nil || wolf == nil {
		panic("need an agent for each side")
	}
	e := &LocalGame{State: game.NewGameState()}
	e.Agents[game.HunterRole] = hunter
	e.Agents[game.WolfRole] = wolf
	return e
}

// Run executes the entire game loop until a winner is found or the game is drawn.
func (e *LocalGame) Run(ctx context.Context) (game.Role, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Turn,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	seen := map[position]int{{e.State.Hash(), e.State.Turn}: 1}
	stalls := 0
	step := 1

	log.Info().Msgf("%s is starting", e.State.Turn)

	for !e.State.Result.Over {
		if ctx.Err() != nil {
			gameMetric.Reason = ReasonCancelled
			break
		}
		if e.State.Ply >= meta.MaxTurns {
			gameMetric.Reason = ReasonTurnLimit
			break
		}

		player := e.State.Turn
		decision := e.Agents[player].FindMove(ctx, e.State)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: decision.Metric,
		})
		step++

		next, err := e.play(decision)
		if err != nil {
			stalls++
			gameMetric.Stalls++
			log.Warn().Msgf("%s stalled at ply %d (%d in a row): %v", player, e.State.Ply, stalls, err)
			if stalls >= meta.MaxStalls {
				gameMetric.Reason = ReasonStalled
				break
			}
			continue
		}
		stalls = 0
		e.State = next
		log.Debug().Msgf("ply %d: %s played %s\n%s", next.Ply, player, decision.Move, next.Board)

		key := position{next.Hash(), next.Turn}
		seen[key]++
		if seen[key] >= meta.RepetitionLimit {
			gameMetric.Reason = ReasonRepetition
			break
		}
	}

	switch e.State.Winner() {
	case game.HunterRole:
		gameMetric.Reason = ReasonWolvesReduced
	case game.WolfRole:
		gameMetric.Reason = ReasonTrapped
	}
	gameMetric.Winner = e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Ply

	log.Info().Msgf("game over after %d plies: winner=%s reason=%s", e.State.Ply, gameMetric.Winner, gameMetric.Reason)
	return gameMetric.Winner, gameMetric, moveMetrics
}

func (e *LocalGame) play(d agent.Decision) (*game.GameState, error) {
	if !d.OK {
		return nil, errNoMove
	}
	return e.State.Play(d.Move)
}
