package communication

import (
	"fmt"
	"time"

	"wolfhunt/game"
	"wolfhunt/meta"
	"wolfhunt/searcher"
	"wolfhunt/searcher/agent"
)

const FindMovePath = "/findmove"

// FindMoveRequest asks for a move for Role on Board. A Difficulty sizes the
// search like the local opponent does; otherwise MaxDepth and TimeLimitMs are
// used as given, within the server's ceilings.
type FindMoveRequest struct {
	Board       game.Board        `json:"board"`
	Role        game.Role         `json:"role"`
	MaxDepth    int               `json:"max_depth,omitempty"`
	TimeLimitMs int               `json:"time_limit_ms,omitempty"`
	Difficulty  *agent.Difficulty `json:"difficulty,omitempty"`
}

type FindMoveResponse struct {
	Found bool       `json:"found"`
	Move  *game.Move `json:"move,omitempty"`
	Score int        `json:"score"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Params validates the request and turns it into search parameters.
func (r FindMoveRequest) Params() (searcher.Params, error) {
	if r.Role != game.HunterRole && r.Role != game.WolfRole {
		return searcher.Params{}, fmt.Errorf("role must be hunter or wolf, got %s", r.Role)
	}
	if r.Difficulty != nil {
		return agent.Params(*r.Difficulty, r.Board, r.Role), nil
	}
	if r.MaxDepth == 0 && r.TimeLimitMs == 0 {
		return agent.Params(agent.Normal, r.Board, r.Role), nil
	}
	if r.MaxDepth < 1 || r.MaxDepth > meta.MaxDepth {
		return searcher.Params{}, fmt.Errorf("max_depth must be within 1..%d, got %d", meta.MaxDepth, r.MaxDepth)
	}
	if r.TimeLimitMs < 0 {
		return searcher.Params{}, fmt.Errorf("time_limit_ms must not be negative, got %d", r.TimeLimitMs)
	}

	limit := time.Duration(r.TimeLimitMs) * time.Millisecond
	if limit == 0 {
		limit = meta.DefaultTimeLimit
	}
	return searcher.Params{
		MaxDepth:  r.MaxDepth,
		TimeLimit: min(limit, meta.MaxTimeLimit),
		Role:      r.Role,
	}, nil
}
