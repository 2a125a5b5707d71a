package agent

import (
	"context"

	"wolfhunt/game"
	"wolfhunt/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	driver     *searcher.Driver
	difficulty Difficulty
}

// NewSearchAgent returns an agent that asks driver for a move sized by
// difficulty and the material left on the board.
func NewSearchAgent(driver *searcher.Driver, difficulty Difficulty) Agent {
	return searchAgent{driver: driver, difficulty: difficulty}
}

func (a searchAgent) FindMove(ctx context.Context, state *game.GameState) Decision {
	p := Params(a.difficulty, state.Board, state.Turn)
	reply := <-a.driver.RequestMove(ctx, state.Board, p)
	if !reply.OK {
		log.Warn().Msgf("%s agent (%s) found no move at ply %d", state.Turn, a.difficulty, state.Ply)
	}
	return Decision{Move: reply.Move, OK: reply.OK, Metric: reply.Metric}
}
