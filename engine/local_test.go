package engine

import (
	"context"
	"testing"

	"wolfhunt/game"
	"wolfhunt/meta"
	"wolfhunt/searcher/agent"

	"github.com/stretchr/testify/require"
)

// scriptedAgent replays moves in a loop.
type scriptedAgent struct {
	moves []game.Move
	next  int
	calls int
}

func (a *scriptedAgent) FindMove(ctx context.Context, state *game.GameState) agent.Decision {
	a.calls++
	if len(a.moves) == 0 {
		return agent.Decision{}
	}
	m := a.moves[a.next%len(a.moves)]
	a.next++
	return agent.Decision{Move: m, OK: true}
}

func TestLocalEngine(t *testing.T) {
	t.Run("random agents finish a game", func(t *testing.T) {
		e := LocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2))
		winner, gameMetric, moveMetrics := e.Run(context.Background())

		require.Equal(t, game.HunterRole, gameMetric.StartingPlayer)
		require.Equal(t, winner, gameMetric.Winner)
		require.NotEmpty(t, gameMetric.Reason)
		require.LessOrEqual(t, gameMetric.TotalMoves, meta.MaxTurns)
		require.Len(t, moveMetrics, gameMetric.TotalMoves+gameMetric.Stalls)
		require.Equal(t, game.HunterRole, moveMetrics[0].Player)
		if winner != game.NoRole {
			require.True(t, e.State.Result.Over)
		}
	})

	t.Run("final capture wins", func(t *testing.T) {
		hunter := &scriptedAgent{moves: []game.Move{{From: 22, To: 12, Capture: true}}}
		wolf := &scriptedAgent{}
		e := LocalEngine(hunter, wolf)
		e.State = &game.GameState{
			Board: game.MustParseBoard(`
				W...W
				.....
				..W..
				.....
				W.H..`),
			Turn: game.HunterRole,
		}

		winner, gameMetric, moveMetrics := e.Run(context.Background())
		require.Equal(t, game.HunterRole, winner)
		require.Equal(t, ReasonWolvesReduced, gameMetric.Reason)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
		require.Zero(t, wolf.calls)
	})

	t.Run("stalling side is asked again then drawn", func(t *testing.T) {
		hunter := &scriptedAgent{}
		wolf := &scriptedAgent{}
		winner, gameMetric, _ := LocalEngine(hunter, wolf).Run(context.Background())

		require.Equal(t, game.NoRole, winner)
		require.Equal(t, ReasonStalled, gameMetric.Reason)
		require.Equal(t, meta.MaxStalls, hunter.calls)
		require.Zero(t, wolf.calls, "Turn should not pass on a stall")
	})

	t.Run("illegal moves stall", func(t *testing.T) {
		hunter := &scriptedAgent{moves: []game.Move{{From: 22, To: 16}}}
		winner, gameMetric, _ := LocalEngine(hunter, agent.NewRandomAgent(3)).Run(context.Background())
		require.Equal(t, game.NoRole, winner)
		require.Equal(t, meta.MaxStalls, gameMetric.Stalls)
	})

	t.Run("threefold repetition draws", func(t *testing.T) {
		hunter := &scriptedAgent{moves: []game.Move{{From: 22, To: 17}, {From: 17, To: 22}}}
		wolf := &scriptedAgent{moves: []game.Move{{From: 10, To: 15}, {From: 15, To: 10}}}
		winner, gameMetric, _ := LocalEngine(hunter, wolf).Run(context.Background())

		require.Equal(t, game.NoRole, winner)
		require.Equal(t, ReasonRepetition, gameMetric.Reason)
		require.Equal(t, 8, gameMetric.TotalMoves)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		winner, gameMetric, moveMetrics := LocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2)).Run(ctx)
		require.Equal(t, game.NoRole, winner)
		require.Equal(t, ReasonCancelled, gameMetric.Reason)
		require.Empty(t, moveMetrics)
	})
}
