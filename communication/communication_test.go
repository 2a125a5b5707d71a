package communication

import (
	"encoding/json"
	"testing"
	"time"

	"wolfhunt/game"
	"wolfhunt/meta"
	"wolfhunt/searcher/agent"

	"github.com/stretchr/testify/require"
)

func TestFindMoveRequestParams(t *testing.T) {
	t.Run("explicit depth and time", func(t *testing.T) {
		var req FindMoveRequest
		body := `{"board":"WWWWWWWWWWWWWWW......HHH.","role":"wolf","max_depth":5,"time_limit_ms":800}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		require.Equal(t, game.NewBoard(), req.Board)

		p, err := req.Params()
		require.NoError(t, err)
		require.Equal(t, 5, p.MaxDepth)
		require.Equal(t, 800*time.Millisecond, p.TimeLimit)
		require.Equal(t, game.WolfRole, p.Role)
	})

	t.Run("difficulty", func(t *testing.T) {
		var req FindMoveRequest
		body := `{"board":"WWWWWWWWWWWWWWW......HHH.","role":"hunter","difficulty":"hard"}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		p, err := req.Params()
		require.NoError(t, err)
		require.Equal(t, agent.Params(agent.Hard, game.NewBoard(), game.HunterRole), p)
	})

	t.Run("defaults and ceilings", func(t *testing.T) {
		p, err := FindMoveRequest{Board: game.NewBoard(), Role: game.WolfRole}.Params()
		require.NoError(t, err)
		require.Equal(t, agent.Params(agent.Normal, game.NewBoard(), game.WolfRole), p)

		p, err = FindMoveRequest{Board: game.NewBoard(), Role: game.WolfRole, MaxDepth: 3, TimeLimitMs: 60000}.Params()
		require.NoError(t, err)
		require.Equal(t, meta.MaxTimeLimit, p.TimeLimit)

		p, err = FindMoveRequest{Board: game.NewBoard(), Role: game.WolfRole, MaxDepth: 3}.Params()
		require.NoError(t, err)
		require.Equal(t, meta.DefaultTimeLimit, p.TimeLimit)
	})

	t.Run("rejects bad requests", func(t *testing.T) {
		bad := []FindMoveRequest{
			{Board: game.NewBoard()},
			{Board: game.NewBoard(), Role: game.WolfRole, MaxDepth: meta.MaxDepth + 1},
			{Board: game.NewBoard(), Role: game.WolfRole, TimeLimitMs: 100},
			{Board: game.NewBoard(), Role: game.WolfRole, MaxDepth: 2, TimeLimitMs: -1},
		}
		for _, req := range bad {
			_, err := req.Params()
			require.Error(t, err, "%+v", req)
		}
	})
}
