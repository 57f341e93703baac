package entity

import (
	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// Game is one human versus computer game. The human plays X and moves
// first, the computer plays O.
type Game struct {
	Board  tictactoe.Board `json:"-"`
	Winner string          `json:"winner"`
	Status string          `json:"status"`
	Score  tictactoe.Score `json:"score"`
}

func NewGame() *Game {
	return &Game{
		Board:  tictactoe.NewBoard(),
		Status: StatusOngoing,
	}
}

func (that *Game) HumanTurn() bool {
	return that.Board.Player() == tictactoe.X
}

// MakeTurn applies a move for mark and refreshes the status.
func (that *Game) MakeTurn(mark tictactoe.Mark, move tictactoe.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board.Player() != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := tictactoe.Apply(that.Board, move)
	if err != nil {
		return err //nolint: wrapcheck // already carries ErrInvalidMove
	}

	that.Board = next
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	that.Score = tictactoe.TerminalScore(that.Board)

	switch {
	// one player wins
	case that.Score != 0:
		that.Winner = tictactoe.Winner(that.Board).String()
		that.Status = StatusFinished
	// tie
	case that.Board.EmptyCount() == 0:
		that.Winner = PlayerTie
		that.Status = StatusFinished
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// HumanScore is the final score from the human's side: positive when X won.
func (that *Game) HumanScore() tictactoe.Score {
	return -that.Score
}
