package agent

import (
	"encoding/json"
	"testing"
	"time"

	"wolfhunt/game"
	"wolfhunt/meta"

	"github.com/stretchr/testify/require"
)

func boardWithWolves(n int) game.Board {
	var b game.Board
	for i := 0; i < n; i++ {
		b[i] = game.Wolf
	}
	b[22] = game.Hunter
	return b
}

func TestParams(t *testing.T) {
	t.Run("wolf depth grows as the pack thins", func(t *testing.T) {
		cases := []struct {
			wolves int
			depth  int
		}{
			{15, 4}, {13, 4}, {12, 5}, {7, 5}, {6, 6}, {4, 6},
		}
		for _, tc := range cases {
			p := Params(Normal, boardWithWolves(tc.wolves), game.WolfRole)
			require.Equal(t, tc.depth, p.MaxDepth, "%d wolves", tc.wolves)
			require.Equal(t, game.WolfRole, p.Role)
		}
	})

	t.Run("hunters use a fixed base depth", func(t *testing.T) {
		require.Equal(t, 5, Params(Normal, game.NewBoard(), game.HunterRole).MaxDepth)
		require.Equal(t, 5, Params(Normal, boardWithWolves(5), game.HunterRole).MaxDepth)
	})

	t.Run("tiers shift depth and time", func(t *testing.T) {
		b := game.NewBoard()
		easy := Params(Easy, b, game.WolfRole)
		normal := Params(Normal, b, game.WolfRole)
		hard := Params(Hard, b, game.WolfRole)

		require.Equal(t, 2, easy.MaxDepth)
		require.Equal(t, 4, normal.MaxDepth)
		require.Equal(t, 5, hard.MaxDepth)
		require.Equal(t, 300*time.Millisecond, easy.TimeLimit)
		require.Equal(t, meta.DefaultTimeLimit, normal.TimeLimit)
		require.Equal(t, 1200*time.Millisecond, hard.TimeLimit)
	})

	t.Run("bounded by the ceiling", func(t *testing.T) {
		for _, d := range []Difficulty{Easy, Normal, Hard, Difficulty(9)} {
			for wolves := 4; wolves <= game.InitialWolves; wolves++ {
				p := Params(d, boardWithWolves(wolves), game.WolfRole)
				require.GreaterOrEqual(t, p.MaxDepth, 1)
				require.LessOrEqual(t, p.TimeLimit, meta.MaxTimeLimit)
			}
		}
	})
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Normal, Hard} {
		parsed, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	_, err := ParseDifficulty("impossible")
	require.Error(t, err)

	var payload struct {
		Difficulty Difficulty `json:"difficulty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"difficulty":"hard"}`), &payload))
	require.Equal(t, Hard, payload.Difficulty)
	require.Error(t, json.Unmarshal([]byte(`{"difficulty":"extreme"}`), &payload))
}
