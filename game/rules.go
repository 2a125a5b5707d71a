package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position off the board")
	ErrNoPiece         = errors.New("no piece on origin")
	ErrWrongPiece      = errors.New("piece cannot make this move")
	ErrOccupied        = errors.New("destination is occupied")
	ErrNotAdjacent     = errors.New("destination is not adjacent")
	ErrIllegalCapture  = errors.New("illegal capture")
)

// Move is a transition of one piece. Capture is only ever set for a hunter's
// jump over an empty cell onto a wolf two cells away.
type Move struct {
	From    Position `json:"from"`
	To      Position `json:"to"`
	Capture bool     `json:"capture,omitempty"`
}

func (m Move) String() string {
	if m.Capture {
		return fmt.Sprintf("%dx%d", m.From, m.To)
	}
	return fmt.Sprintf("%d-%d", m.From, m.To)
}

// Midpoint returns the cell jumped over by a capture.
func (m Move) Midpoint() Position {
	return (m.From + m.To) / 2
}

// neighbours returns the orthogonal cells of p that exist on the grid.
// Boundaries are checked before offsetting so no move wraps around a row.
func neighbours(p Position) []Position {
	out := make([]Position, 0, 4)
	row, col := p.Row(), p.Col()
	if row > 0 {
		out = append(out, p-Size)
	}
	if row < Size-1 {
		out = append(out, p+Size)
	}
	if col > 0 {
		out = append(out, p-1)
	}
	if col < Size-1 {
		out = append(out, p+1)
	}
	return out
}

// AdjacentEmpty returns the up-to-four empty orthogonal neighbours of p.
func AdjacentEmpty(b Board, p Position) []Position {
	if !p.Valid() {
		return nil
	}
	out := neighbours(p)
	n := 0
	for _, q := range out {
		if b[q] == Empty {
			out[n] = q
			n++
		}
	}
	return out[:n]
}

// LegalSteps returns the plain steps available to the piece on p. It is empty
// when p is off the board or holds no piece.
func LegalSteps(b Board, p Position) []Position {
	if b.At(p) == Empty {
		return nil
	}
	return AdjacentEmpty(b, p)
}

// captureLines are the four (row, col) jumps of a capture.
var captureLines = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// CanCapture reports whether the hunter on h may capture the wolf on t. The
// two cells must share a row or a column explicitly; raw index offsets would
// accept jumps that wrap across rows.
func CanCapture(b Board, h, t Position) bool {
	if !h.Valid() || !t.Valid() {
		return false
	}
	if b[h] != Hunter || b[t] != Wolf {
		return false
	}
	dr, dc := t.Row()-h.Row(), t.Col()-h.Col()
	inLine := (dr == 0 && abs(dc) == 2) || (dc == 0 && abs(dr) == 2)
	if !inLine {
		return false
	}
	return b[At(h.Row()+dr/2, h.Col()+dc/2)] == Empty
}

// PossibleCaptures lists the wolves the hunter on h may capture this turn.
func PossibleCaptures(b Board, h Position) []Position {
	if b.At(h) != Hunter {
		return nil
	}
	var out []Position
	for _, d := range captureLines {
		t := At(h.Row()+d[0], h.Col()+d[1])
		if t >= 0 && CanCapture(b, h, t) {
			out = append(out, t)
		}
	}
	return out
}

// LegalCaptures is PossibleCaptures under the name used by the presentation
// layer.
func LegalCaptures(b Board, p Position) []Position {
	return PossibleCaptures(b, p)
}

// ApplyStep moves the piece on from to the adjacent empty cell to.
func ApplyStep(b Board, from, to Position) (Board, error) {
	if !from.Valid() || !to.Valid() {
		return b, fmt.Errorf("step %d-%d: %w", from, to, ErrInvalidPosition)
	}
	if b[from] == Empty {
		return b, fmt.Errorf("step %d-%d: %w", from, to, ErrNoPiece)
	}
	if b[to] != Empty {
		return b, fmt.Errorf("step %d-%d: %w", from, to, ErrOccupied)
	}
	if !IsAdjacent(from, to) {
		return b, fmt.Errorf("step %d-%d: %w", from, to, ErrNotAdjacent)
	}
	return b.Play(Move{From: from, To: to}), nil
}

// ApplyCapture lets the hunter on h take the wolf on t.
func ApplyCapture(b Board, h, t Position) (Board, error) {
	if !h.Valid() || !t.Valid() {
		return b, fmt.Errorf("capture %dx%d: %w", h, t, ErrInvalidPosition)
	}
	if b[h] == Empty {
		return b, fmt.Errorf("capture %dx%d: %w", h, t, ErrNoPiece)
	}
	if b[h] != Hunter {
		return b, fmt.Errorf("capture %dx%d: %w", h, t, ErrWrongPiece)
	}
	if !CanCapture(b, h, t) {
		return b, fmt.Errorf("capture %dx%d: %w", h, t, ErrIllegalCapture)
	}
	return b.Play(Move{From: h, To: t, Capture: true}), nil
}

// ApplyMove validates m against b and returns the resulting board. b itself is
// never modified.
func ApplyMove(b Board, m Move) (Board, error) {
	if m.Capture {
		return ApplyCapture(b, m.From, m.To)
	}
	return ApplyStep(b, m.From, m.To)
}

// Play applies m without validation. It is meant for moves produced by
// LegalMoves; anything else goes through ApplyMove.
func (b Board) Play(m Move) Board {
	if m.Capture {
		b[m.Midpoint()] = Empty
	}
	b[m.To] = b[m.From]
	b[m.From] = Empty
	return b
}

// LegalMoves generates every move available to role: plain steps for wolves,
// steps followed by captures for each hunter.
func LegalMoves(b Board, role Role) []Move {
	piece := role.Piece()
	if piece == Empty {
		return nil
	}
	moves := make([]Move, 0, 32)
	for i, cell := range b {
		if cell != piece {
			continue
		}
		from := Position(i)
		for _, to := range AdjacentEmpty(b, from) {
			moves = append(moves, Move{From: from, To: to})
		}
		if piece == Hunter {
			for _, to := range PossibleCaptures(b, from) {
				moves = append(moves, Move{From: from, To: to, Capture: true})
			}
		}
	}
	return moves
}

// IsLegal reports whether m is one of the moves role may play on b.
func IsLegal(b Board, role Role, m Move) bool {
	if role.Piece() == Empty || b.At(m.From) != role.Piece() {
		return false
	}
	if m.Capture {
		return CanCapture(b, m.From, m.To)
	}
	return b.At(m.To) == Empty && m.To.Valid() && IsAdjacent(m.From, m.To)
}
