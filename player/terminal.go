package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wolfhunt/game"
	"wolfhunt/gamemaster"
)

type Controller interface {
	Run(ctx context.Context) error
}

type terminalController struct {
	session *gamemaster.Session
	in      *bufio.Scanner
	out     io.Writer
}

// NewTerminalController plays session with moves typed on in, e.g. "22 17"
// or "23x13", and prints the board to out.
func NewTerminalController(session *gamemaster.Session, in io.Reader, out io.Writer) Controller {
	return &terminalController{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

const help = `commands:
  <from> <to>     move a piece, e.g. "22 17" or "23x13"
  moves <cell>    list where the piece on cell can go
  role <side>     start over playing hunter or wolf
  new             start over
  quit`

func (c *terminalController) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, help)
	c.printState()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		state := c.session.State()
		if state.Result.Over {
			fmt.Fprintf(c.out, "game over, %s win\n", state.Winner())
			return nil
		}

		if c.session.ComputerToMove() {
			_, move, err := c.session.ComputerTurn(ctx)
			switch {
			case errors.Is(err, gamemaster.ErrStale):
				continue
			case errors.Is(err, gamemaster.ErrNoMove):
				fmt.Fprintln(c.out, "computer cannot move, game drawn")
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintf(c.out, "computer plays %s\n", move)
			c.printState()
			continue
		}

		if len(state.LegalMoves()) == 0 {
			fmt.Fprintln(c.out, "you cannot move, game drawn")
			return nil
		}

		fmt.Fprintf(c.out, "%s> ", state.Turn)
		if !c.in.Scan() {
			return c.in.Err()
		}
		if quit := c.handle(strings.TrimSpace(c.in.Text()), state); quit {
			return nil
		}
	}
}

func (c *terminalController) handle(line string, state *game.GameState) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return true
	case "help":
		fmt.Fprintln(c.out, help)
	case "new":
		c.session.Reset()
		c.printState()
	case "role":
		if len(fields) != 2 {
			fmt.Fprintln(c.out, "usage: role hunter|wolf")
			return false
		}
		role, err := game.ParseRole(fields[1])
		if err == nil {
			err = c.session.SetPlayerRole(role)
		}
		if err != nil {
			fmt.Fprintln(c.out, err)
			return false
		}
		c.printState()
	case "moves":
		if len(fields) != 2 {
			fmt.Fprintln(c.out, "usage: moves <cell>")
			return false
		}
		p, err := parsePosition(fields[1])
		if err != nil {
			fmt.Fprintln(c.out, err)
			return false
		}
		sel := c.session.Select(p)
		fmt.Fprintf(c.out, "steps %v captures %v\n", sel.Steps, sel.Captures)
	default:
		move, err := ParseMove(line)
		if err == nil {
			_, err = c.session.Play(move)
		}
		if err != nil {
			fmt.Fprintf(c.out, "invalid move: %v\n", err)
			return false
		}
		c.printState()
	}
	return false
}

func (c *terminalController) printState() {
	state := c.session.State()
	fmt.Fprintf(c.out, "\n%s\nwolves %d, %s to move\n", state.Board, state.Board.Count(game.Wolf), state.Turn)
}

// ParseMove reads "from to", "from-to" or "fromxto". Two cells apart in a
// line is read as a capture.
func ParseMove(s string) (game.Move, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '-' || r == 'x' || r == ','
	})
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("expected two cells in %q", s)
	}
	from, err := parsePosition(fields[0])
	if err != nil {
		return game.Move{}, err
	}
	to, err := parsePosition(fields[1])
	if err != nil {
		return game.Move{}, err
	}
	inLine := from.Row() == to.Row() || from.Col() == to.Col()
	return game.Move{From: from, To: to, Capture: inLine && game.Manhattan(from, to) == 2}, nil
}

func parsePosition(s string) (game.Position, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad cell %q: %w", s, err)
	}
	p := game.Position(n)
	if !p.Valid() {
		return 0, fmt.Errorf("cell %d: %w", n, game.ErrInvalidPosition)
	}
	return p, nil
}
