package agent

import (
	"context"
	"testing"

	"wolfhunt/game"
	"wolfhunt/searcher"

	"github.com/stretchr/testify/require"
)

type recordingSearcher struct {
	params []searcher.Params
	result searcher.Result
}

func (s *recordingSearcher) Search(ctx context.Context, b game.Board, p searcher.Params) searcher.Result {
	s.params = append(s.params, p)
	return s.result
}

func TestSearchAgent(t *testing.T) {
	t.Run("sizes the request from the difficulty", func(t *testing.T) {
		move := game.Move{From: 22, To: 17}
		s := &recordingSearcher{result: searcher.Result{Move: move, Found: true}}
		a := NewSearchAgent(searcher.NewDriver(s), Hard)

		d := a.FindMove(context.Background(), game.NewGameState())
		require.True(t, d.OK)
		require.Equal(t, move, d.Move)
		require.Equal(t, []searcher.Params{Params(Hard, game.NewBoard(), game.HunterRole)}, s.params)
	})

	t.Run("passes on no move", func(t *testing.T) {
		a := NewSearchAgent(searcher.NewDriver(&recordingSearcher{}), Normal)
		require.False(t, a.FindMove(context.Background(), game.NewGameState()).OK)
	})

	t.Run("plays a legal move with a real search", func(t *testing.T) {
		a := NewSearchAgent(searcher.NewDriver(searcher.New()), Easy)
		state := game.NewGameState()
		d := a.FindMove(context.Background(), state)
		require.True(t, d.OK)
		_, err := state.Play(d.Move)
		require.NoError(t, err)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("legal and reproducible", func(t *testing.T) {
		a, b := NewRandomAgent(5), NewRandomAgent(5)
		state := game.NewGameState()
		for i := 0; i < 20 && !state.Result.Over; i++ {
			da := a.FindMove(context.Background(), state)
			db := b.FindMove(context.Background(), state)
			require.True(t, da.OK)
			require.Equal(t, da.Move, db.Move)

			next, err := state.Play(da.Move)
			require.NoError(t, err)
			state = next
		}
	})

	t.Run("no move when the game is over", func(t *testing.T) {
		state := &game.GameState{Board: game.NewBoard(), Turn: game.HunterRole, Result: game.GameResult{Over: true, Winner: game.WolfRole}}
		require.False(t, NewRandomAgent(1).FindMove(context.Background(), state).OK)
	})
}
