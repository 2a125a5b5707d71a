package agent

import (
	"fmt"
	"time"

	"wolfhunt/game"
	"wolfhunt/meta"
	"wolfhunt/searcher"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Depth added to the base depth and time budget for each tier
var tiers = map[Difficulty]struct {
	offset int
	budget time.Duration
}{
	Easy:   {offset: -2, budget: 300 * time.Millisecond},
	Normal: {offset: 0, budget: meta.DefaultTimeLimit},
	Hard:   {offset: 1, budget: 1200 * time.Millisecond},
}

const hunterDepth = 5

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "normal", "":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// wolfDepth searches deeper as the pack thins and the tree narrows.
func wolfDepth(wolves int) int {
	switch {
	case wolves > 12:
		return 4
	case wolves > 6:
		return 5
	default:
		return 6
	}
}

// Params sizes a search for role on b at the given difficulty.
func Params(d Difficulty, b game.Board, role game.Role) searcher.Params {
	tier, ok := tiers[d]
	if !ok {
		tier = tiers[Normal]
	}

	depth := hunterDepth
	if role == game.WolfRole {
		depth = wolfDepth(b.Count(game.Wolf))
	}

	return searcher.Params{
		MaxDepth:  max(depth+tier.offset, 1),
		TimeLimit: min(tier.budget, meta.MaxTimeLimit),
		Role:      role,
	}
}
