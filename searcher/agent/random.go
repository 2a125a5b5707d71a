package agent

import (
	"context"
	"sync"

	"wolfhunt/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves. Equal
// seeds give equal games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, state *game.GameState) Decision {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Decision{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return Decision{Move: moves[a.rng.Intn(len(moves))], OK: true}
}
