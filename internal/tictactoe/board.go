package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Size is the side of the grid.
const Size = 3

// Mark is the content of a cell and also identifies the side to move.
type Mark int8

const (
	Empty Mark = 0
	X     Mark = -1 // the human, moves first
	O     Mark = 1  // the computer, maximizing side
)

var ErrInvalidBoard = errors.New("invalid board")

func (m Mark) Opponent() Mark {
	return -m
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Move addresses a cell by column and row, both zero based.
type Move struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Col, that.Row)
}

func (that Move) inRange() bool {
	return that.Col >= 0 && that.Col < Size && that.Row >= 0 && that.Row < Size
}

// Board is an immutable snapshot of the grid plus the side to move.
// It is a comparable value: two boards are equal iff grid and player match.
type Board struct {
	cells  [Size][Size]Mark
	player Mark
}

// NewBoard returns the root state: an empty grid with X to move.
func NewBoard() Board {
	return Board{player: X}
}

// FromCells builds a board from a row-major grid. Cells must be Empty, X or O
// and player must be X or O.
func FromCells(cells [Size][Size]Mark, player Mark) (Board, error) {
	if player != X && player != O {
		return Board{}, fmt.Errorf("%w: player %d", ErrInvalidBoard, player)
	}

	for row := range cells {
		for col, cell := range cells[row] {
			if cell != Empty && cell != X && cell != O {
				return Board{}, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, col, row, cell)
			}
		}
	}

	return Board{cells: cells, player: player}, nil
}

func (that Board) Player() Mark {
	return that.player
}

func (that Board) Cell(m Move) Mark {
	if !m.inRange() {
		return Empty
	}
	return that.cells[m.Row][m.Col]
}

// Cells returns a copy of the grid.
func (that Board) Cells() [Size][Size]Mark {
	return that.cells
}

func (that Board) EmptyCount() int {
	count := 0
	for row := range that.cells {
		for _, cell := range that.cells[row] {
			if cell == Empty {
				count++
			}
		}
	}
	return count
}

// ValidMoves lists every empty cell in row-major order.
func ValidMoves(b Board) []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range b.cells {
		for col, cell := range b.cells[row] {
			if cell == Empty {
				moves = append(moves, Move{Col: col, Row: row})
			}
		}
	}
	return moves
}

// Apply places the mark of the side to move on m and hands the turn over.
// The receiver board is left untouched.
func Apply(b Board, m Move) (Board, error) {
	if !m.inRange() {
		return b, fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, m)
	}

	if b.cells[m.Row][m.Col] != Empty {
		return b, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, m)
	}

	child := b
	child.cells[m.Row][m.Col] = b.player
	child.player = b.player.Opponent()

	return child, nil
}

// Children expands b in ValidMoves order.
func Children(b Board) []Board {
	moves := ValidMoves(b)
	children := make([]Board, 0, len(moves))
	for _, m := range moves {
		child := b
		child.cells[m.Row][m.Col] = b.player
		child.player = b.player.Opponent()
		children = append(children, child)
	}
	return children
}
