package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameState(t *testing.T) {
	t.Run("hunters move first and turns alternate", func(t *testing.T) {
		gs := NewGameState()
		require.Equal(t, HunterRole, gs.Player())
		require.Len(t, gs.LegalMoves(), 8)

		next, err := gs.Play(Move{From: 22, To: 17})
		require.NoError(t, err)
		require.Equal(t, WolfRole, next.Player())
		require.Equal(t, 1, next.Ply)
		require.Equal(t, &Move{From: 22, To: 17}, next.Last)
		require.Equal(t, NewBoard(), gs.Board, "Play should not mutate the receiver")
		require.Equal(t, 0, gs.Ply)
	})

	t.Run("wrong side", func(t *testing.T) {
		gs := NewGameState()
		_, err := gs.Play(Move{From: 10, To: 15})
		require.ErrorIs(t, err, ErrWrongTurn)
	})

	t.Run("illegal move", func(t *testing.T) {
		gs := NewGameState()
		_, err := gs.Play(Move{From: 22, To: 16})
		require.ErrorIs(t, err, ErrNotAdjacent)
	})

	t.Run("final capture ends the game", func(t *testing.T) {
		gs := &GameState{
			Board: MustParseBoard(`
				WWW..
				.....
				..W..
				.....
				..H..`),
			Turn: HunterRole,
		}
		next, err := gs.Play(Move{From: 22, To: 12, Capture: true})
		require.NoError(t, err)
		require.Equal(t, GameResult{Over: true, Winner: HunterRole}, next.Result)
		require.Equal(t, HunterRole, next.Winner())
		require.Equal(t, HunterRole, next.Player(), "Turn should stay with the mover")
		require.Empty(t, next.LegalMoves())

		_, err = next.Play(Move{From: 12, To: 17})
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("copies are independent", func(t *testing.T) {
		gs, err := NewGameState().Play(Move{From: 21, To: 16})
		require.NoError(t, err)

		cp := gs.Copy()
		cp.Board[0] = Empty
		cp.Last.To = 20
		require.Equal(t, Wolf, gs.Board[0])
		require.Equal(t, Position(16), gs.Last.To)
		require.Equal(t, gs.Hash(), gs.Board.Hash())
	})
}
