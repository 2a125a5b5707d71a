package game

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver  = errors.New("game is over")
	ErrWrongTurn = errors.New("not this side's turn")
)

// GameState is the explicit per-game value owned by whoever drives the game.
// Play never mutates the receiver, so snapshots can be handed to a search
// running elsewhere.
type GameState struct {
	Board  Board      `json:"board"`
	Turn   Role       `json:"turn"`
	Result GameResult `json:"result"`
	Ply    int        `json:"ply"`
	Last   *Move      `json:"last,omitempty"`
}

// NewGameState returns a fresh game with the hunters to move.
func NewGameState() *GameState {
	return &GameState{
		Board: NewBoard(),
		Turn:  HunterRole,
	}
}

func (gs GameState) Copy() *GameState {
	if gs.Last != nil {
		last := *gs.Last
		gs.Last = &last
	}
	return &gs
}

func (gs *GameState) Player() Role {
	return gs.Turn
}

func (gs *GameState) LegalMoves() []Move {
	if gs.Result.Over {
		return nil
	}
	return LegalMoves(gs.Board, gs.Turn)
}

func (gs *GameState) Winner() Role {
	return gs.Result.Winner
}

func (gs *GameState) Hash() StateHash {
	return gs.Board.Hash()
}

// Play validates m for the side to move and returns the next state. The turn
// stays with the mover once the game is over.
func (gs *GameState) Play(m Move) (*GameState, error) {
	if gs.Result.Over {
		return nil, ErrGameOver
	}
	if gs.Board.At(m.From) != gs.Turn.Piece() {
		return nil, fmt.Errorf("%s cannot move %d: %w", gs.Turn, m.From, ErrWrongTurn)
	}
	board, err := ApplyMove(gs.Board, m)
	if err != nil {
		return nil, err
	}

	next := &GameState{
		Board:  board,
		Turn:   gs.Turn,
		Result: CheckGameOver(board),
		Ply:    gs.Ply + 1,
		Last:   &m,
	}
	if !next.Result.Over {
		next.Turn = gs.Turn.Opponent()
	}
	return next, nil
}
