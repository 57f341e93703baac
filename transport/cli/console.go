package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const prompt = "Enter a move (y, x): "

type gameManager interface {
	NewGame() *entity.Game
	HumanTurn(game *entity.Game, move tictactoe.Move) error
	ComputerTurn(game *entity.Game) (*search.Decision, time.Duration, error)
}

type inputLine struct {
	text string
	err  error
}

// Console plays one game per Play call on a line based terminal.
type Console struct {
	logger   *slog.Logger
	manager  gameManager
	in       *bufio.Scanner
	out      *termenv.Output
	renderer *Renderer

	lines    chan inputLine
	readOnce sync.Once
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Console {
	output := termenv.NewOutput(out, opts...)

	return &Console{
		logger:   logger.With("component", "console"),
		manager:  manager,
		in:       bufio.NewScanner(in),
		out:      output,
		renderer: NewRenderer(output),
		lines:    make(chan inputLine),
	}
}

// Play runs a game until it ends, the input is exhausted or ctx is done.
// Running out of search depth abandons the game without an error.
func (that *Console) Play(ctx context.Context) error {
	log := that.logger.With("method", "Play")

	game := that.manager.NewGame()

	for {
		if err := ctx.Err(); err != nil {
			return err //nolint: wrapcheck // plain cancellation
		}

		that.println(that.renderer.Render(game.Board))

		if game.HumanTurn() {
			move, ok, err := that.readMove(ctx)
			if err != nil {
				return err
			}

			if !ok {
				log.Info("input closed, leaving the game")
				return nil
			}

			if err = that.manager.HumanTurn(game, move); err != nil {
				if errors.Is(err, apperror.ErrInvalidMove) {
					that.println("BAD MOVE")
					continue
				}
				return fmt.Errorf("human turn failed: %w", err)
			}
		} else {
			_, elapsed, err := that.manager.ComputerTurn(game)
			if errors.Is(err, apperror.ErrRecursionExhausted) {
				log.Error("search abandoned", "error", err)
				that.println("Recursion limit")
				return nil
			}

			if err != nil && !errors.Is(err, apperror.ErrGameFinished) {
				return fmt.Errorf("computer turn failed: %w", err)
			}

			that.println("Computer took: " + elapsed.String())
		}

		if game.IsFinished() {
			that.printResult(game)
			return nil
		}
	}
}

// readMove prompts until a parsable line arrives. ok is false on end of
// input. A done ctx interrupts the wait and its error is returned as is.
func (that *Console) readMove(ctx context.Context) (tictactoe.Move, bool, error) {
	that.readOnce.Do(func() { go that.scan() })

	for {
		that.print(prompt)

		select {
		case <-ctx.Done():
			return tictactoe.Move{}, false, ctx.Err() //nolint: wrapcheck // plain cancellation
		case line, open := <-that.lines:
			if !open {
				return tictactoe.Move{}, false, nil
			}

			if line.err != nil {
				return tictactoe.Move{}, false, fmt.Errorf("failed to read move: %w", line.err)
			}

			move, err := parseMove(line.text)
			if err != nil {
				that.println("BAD MOVE")
				continue
			}

			return move, true, nil
		}
	}
}

// scan feeds input lines to readMove until the input ends. It outlives Play
// while the reader blocks.
func (that *Console) scan() {
	defer close(that.lines)

	for that.in.Scan() {
		that.lines <- inputLine{text: that.in.Text()}
	}

	if err := that.in.Err(); err != nil {
		that.lines <- inputLine{err: err}
	}
}

func (that *Console) printResult(game *entity.Game) {
	that.println(that.renderer.Render(game.Board))

	score := game.HumanScore()
	switch {
	case score > 0:
		that.println("You won!")
	case score == 0:
		that.println("You drew")
	default:
		that.println("You lost...")
	}

	that.println(fmt.Sprintf("Your Score: %d", score))
}

func (that *Console) print(s string) {
	if _, err := io.WriteString(that.out, s); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Console) println(s string) {
	that.print(s + "\n")
}
