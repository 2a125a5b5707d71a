package game

import "golang.org/x/exp/rand"

// StateHash identifies a board, e.g. for repetition detection.
type StateHash uint64

// Fixed seed so hashes are stable across processes and test runs.
const zobristSeed = 0x5eed_0f_f0e5

var zobristKeys [3][Cells]uint64

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for _, piece := range []Cell{Hunter, Wolf} {
		for i := range zobristKeys[piece] {
			v := rng.Uint64()
			for v == 0 {
				v = rng.Uint64()
			}
			zobristKeys[piece][i] = v
		}
	}
}

// Hash returns the Zobrist hash of the board.
func (b Board) Hash() StateHash {
	var h uint64
	for i, cell := range b {
		if cell != Empty {
			h ^= zobristKeys[cell][i]
		}
	}
	return StateHash(h)
}
