package game

import (
	"fmt"
	"strings"
)

// Position is a cell index in [0, Cells).
type Position int

func (p Position) Valid() bool {
	return p >= 0 && p < Cells
}

func (p Position) Row() int {
	return int(p) / Size
}

func (p Position) Col() int {
	return int(p) % Size
}

// At returns the position for a row and column, or -1 when off the grid.
func At(row, col int) Position {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return -1
	}
	return Position(row*Size + col)
}

// Center is the middle cell of the grid.
const Center = Position(Cells / 2)

// IsAdjacent reports whether a and b are orthogonal neighbours. Diagonals are
// never adjacent.
func IsAdjacent(a, b Position) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return Manhattan(a, b) == 1
}

func Manhattan(a, b Position) int {
	return abs(a.Row()-b.Row()) + abs(a.Col()-b.Col())
}

func DistanceToCenter(p Position) int {
	return Manhattan(p, Center)
}

// Board is a fixed 5x5 grid stored row-major. It is a value type: copies are
// independent, which is what the search relies on.
type Board [Cells]Cell

// NewBoard returns the starting layout: wolves fill the first three rows and
// the hunters stand on 21, 22 and 23.
func NewBoard() Board {
	var b Board
	for i := 0; i < InitialWolves; i++ {
		b[i] = Wolf
	}
	b[21] = Hunter
	b[22] = Hunter
	b[23] = Hunter
	return b
}

// At returns the content of a cell, Empty for positions off the grid.
func (b Board) At(p Position) Cell {
	if !p.Valid() {
		return Empty
	}
	return b[p]
}

func (b Board) Count(c Cell) int {
	n := 0
	for _, cell := range b {
		if cell == c {
			n++
		}
	}
	return n
}

// Positions lists the cells holding c in index order.
func (b Board) Positions(c Cell) []Position {
	out := make([]Position, 0, InitialWolves)
	for i, cell := range b {
		if cell == c {
			out = append(out, Position(i))
		}
	}
	return out
}

func (b Board) Pieces() int {
	return Cells - b.Count(Empty)
}

// String renders the board as five lines of W, H and '.'.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteString(b[row*Size+col].String())
		}
		if row < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Compact renders the board as a single 25 character string.
func (b Board) Compact() string {
	var sb strings.Builder
	sb.Grow(Cells)
	for _, cell := range b {
		sb.WriteString(cell.String())
	}
	return sb.String()
}

// ParseBoard reads the output of String or Compact. Whitespace and '/' row
// separators are ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	i := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '/':
			continue
		}
		if i >= Cells {
			return Board{}, fmt.Errorf("board has more than %d cells", Cells)
		}
		switch r {
		case 'W', 'w':
			b[i] = Wolf
		case 'H', 'h':
			b[i] = Hunter
		case '.', '_', '0':
			b[i] = Empty
		default:
			return Board{}, fmt.Errorf("unexpected cell %q at %d", r, i)
		}
		i++
	}
	if i != Cells {
		return Board{}, fmt.Errorf("board has %d cells, want %d", i, Cells)
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed layouts known to be well formed.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) MarshalText() ([]byte, error) {
	return []byte(b.Compact()), nil
}

func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ParseBoard(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
