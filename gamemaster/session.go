package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"wolfhunt/game"
	"wolfhunt/searcher"
	"wolfhunt/searcher/agent"

	"github.com/rs/zerolog/log"
)

var (
	ErrStale       = errors.New("computer move belongs to a superseded game")
	ErrNotYourTurn = errors.New("not the player's turn")
	ErrNoMove      = errors.New("computer found no move")
)

// Selection lists where the piece on a cell may go.
type Selection struct {
	From     game.Position
	Steps    []game.Position
	Captures []game.Position
}

// Session owns the game a human plays against the computer. The computer's
// search runs without holding the session, so Reset and SetPlayerRole stay
// responsive and turn any reply still in flight stale.
type Session struct {
	mu         sync.Mutex
	state      *game.GameState
	playerRole game.Role
	driver     *searcher.Driver
	difficulty agent.Difficulty
}

// NewSession starts a game with the human playing the hunters.
func NewSession(driver *searcher.Driver, difficulty agent.Difficulty) *Session {
	return &Session{
		state:      game.NewGameState(),
		playerRole: game.HunterRole,
		driver:     driver,
		difficulty: difficulty,
	}
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.driver.Invalidate()
	s.state = game.NewGameState()
}

// SetPlayerRole switches the human's side and starts a new game.
func (s *Session) SetPlayerRole(role game.Role) error {
	if role != game.HunterRole && role != game.WolfRole {
		return fmt.Errorf("cannot play as %s", role)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerRole = role
	s.reset()
	return nil
}

func (s *Session) PlayerRole() game.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerRole
}

func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

// ComputerToMove reports whether the computer owes the next move.
func (s *Session) ComputerToMove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.state.Result.Over && s.state.Turn != s.playerRole
}

// Select lists the moves of the human's piece on p. It is empty when p holds
// none or it is not the human's turn.
func (s *Session) Select(p game.Position) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := Selection{From: p}
	if s.state.Result.Over || s.state.Turn != s.playerRole || s.state.Board.At(p) != s.playerRole.Piece() {
		return sel
	}
	sel.Steps = game.LegalSteps(s.state.Board, p)
	if s.playerRole == game.HunterRole {
		sel.Captures = game.LegalCaptures(s.state.Board, p)
	}
	return sel
}

// Play applies the human's move.
func (s *Session) Play(m game.Move) (*game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Result.Over {
		return nil, game.ErrGameOver
	}
	if s.state.Turn != s.playerRole {
		return nil, ErrNotYourTurn
	}
	next, err := s.state.Play(m)
	if err != nil {
		return nil, err
	}
	s.state = next
	return next.Copy(), nil
}

// ComputerTurn asks the search for the computer's move and applies it. A reply
// that arrives after Reset or SetPlayerRole is dropped with ErrStale.
func (s *Session) ComputerTurn(ctx context.Context) (*game.GameState, game.Move, error) {
	s.mu.Lock()
	if s.state.Result.Over {
		s.mu.Unlock()
		return nil, game.Move{}, game.ErrGameOver
	}
	if s.state.Turn == s.playerRole {
		s.mu.Unlock()
		return nil, game.Move{}, ErrNotYourTurn
	}
	board, role := s.state.Board, s.state.Turn
	p := agent.Params(s.difficulty, board, role)
	replyCh := s.driver.RequestMove(ctx, board, p)
	s.mu.Unlock()

	reply := <-replyCh

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.driver.Current(reply) {
		log.Debug().Msgf("dropping stale %s move %s", role, reply.Move)
		return nil, game.Move{}, ErrStale
	}
	if !reply.OK {
		return nil, game.Move{}, ErrNoMove
	}
	next, err := s.state.Play(reply.Move)
	if err != nil {
		return nil, game.Move{}, fmt.Errorf("computer move %s: %w", reply.Move, err)
	}
	s.state = next
	log.Info().Msgf("computer (%s) played %s, score %d", role, reply.Move, reply.Score)
	return next.Copy(), reply.Move, nil
}
