package game

import "fmt"

const (
	Size  = 5
	Cells = Size * Size

	InitialWolves  = 15
	InitialHunters = 3

	// Hunters win once the pack is reduced to this many wolves
	WolfLimit = 3
)

// Cell is the content of a single board square.
type Cell int8

const (
	Empty Cell = iota
	Hunter
	Wolf
)

func (c Cell) String() string {
	switch c {
	case Hunter:
		return "H"
	case Wolf:
		return "W"
	default:
		return "."
	}
}

// Role is the side a move generation or evaluation call is performed for.
type Role int8

const (
	NoRole     Role = Role(Empty)
	HunterRole Role = Role(Hunter)
	WolfRole   Role = Role(Wolf)
)

// Piece returns the cell value occupied by the role's pieces.
func (r Role) Piece() Cell {
	return Cell(r)
}

func (r Role) Opponent() Role {
	switch r {
	case HunterRole:
		return WolfRole
	case WolfRole:
		return HunterRole
	default:
		return NoRole
	}
}

func (r Role) String() string {
	switch r {
	case HunterRole:
		return "hunter"
	case WolfRole:
		return "wolf"
	default:
		return "none"
	}
}

// ParseRole accepts "hunter" or "wolf".
func ParseRole(s string) (Role, error) {
	switch s {
	case "hunter", "h", "H":
		return HunterRole, nil
	case "wolf", "w", "W":
		return WolfRole, nil
	}
	return NoRole, fmt.Errorf("unknown role %q", s)
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	if s := string(text); s == "" || s == "none" {
		*r = NoRole
		return nil
	}
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Evaluates a board to a signed score from one role's perspective, higher is
// better for that role.
type Evaluate func(Board) int
