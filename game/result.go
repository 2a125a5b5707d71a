package game

// GameResult reports whether a board is terminal and who won.
type GameResult struct {
	Over   bool `json:"over"`
	Winner Role `json:"winner"`
}

// HunterCanMove reports whether the hunter on p has a step or a capture.
func HunterCanMove(b Board, p Position) bool {
	return len(AdjacentEmpty(b, p)) > 0 || len(PossibleCaptures(b, p)) > 0
}

// HuntersTrapped reports whether no hunter on the board can move.
func HuntersTrapped(b Board) bool {
	for i, cell := range b {
		if cell == Hunter && HunterCanMove(b, Position(i)) {
			return false
		}
	}
	return true
}

// CheckGameOver recomputes the result from the board alone. The hunters' win
// is checked first, so a board satisfying both conditions goes to the hunters.
func CheckGameOver(b Board) GameResult {
	if b.Count(Wolf) <= WolfLimit {
		return GameResult{Over: true, Winner: HunterRole}
	}
	if HuntersTrapped(b) {
		return GameResult{Over: true, Winner: WolfRole}
	}
	return GameResult{}
}
