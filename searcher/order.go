package searcher

import (
	"cmp"
	"slices"

	"wolfhunt/game"
)

// OrderMoves sorts moves in place: captures first, then by distance of the
// destination to the centre. Equal moves keep their generation order.
func OrderMoves(moves []game.Move) []game.Move {
	slices.SortStableFunc(moves, func(a, b game.Move) int {
		if a.Capture != b.Capture {
			if a.Capture {
				return -1
			}
			return 1
		}
		return cmp.Compare(game.DistanceToCenter(a.To), game.DistanceToCenter(b.To))
	})
	return moves
}
