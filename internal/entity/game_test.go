package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playAll(t *testing.T, game *Game, moves ...tictactoe.Move) {
	t.Helper()

	for _, move := range moves {
		require.NoError(t, game.MakeTurn(game.Board.Player(), move))
	}
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty, the human moves and the game is ongoing
	assert.Equal(t, tictactoe.NewBoard(), game.Board)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.True(t, game.HumanTurn())
	assert.False(t, game.IsFinished())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame()

		// When: X plays the center
		err := game.MakeTurn(tictactoe.X, tictactoe.Move{Col: 1, Row: 1})
		require.NoError(t, err)

		// Then: the mark is placed and the computer moves next
		assert.Equal(t, tictactoe.X, game.Board.Cell(tictactoe.Move{Col: 1, Row: 1}))
		assert.False(t, game.HumanTurn())
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: X took the top-left corner
		game := NewGame()
		playAll(t, game, tictactoe.Move{Col: 0, Row: 0})
		before := *game

		// When: O tries the same cell
		err := game.MakeTurn(tictactoe.O, tictactoe.Move{Col: 0, Row: 0})

		// Then: ErrInvalidMove is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's X's turn
		game := NewGame()

		// When: O tries to move
		err := game.MakeTurn(tictactoe.O, tictactoe.Move{Col: 1, Row: 0})

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, tictactoe.NewBoard(), game.Board)
	})

	t.Run("Error on Invalid Cell", func(t *testing.T) {
		game := NewGame()

		err := game.MakeTurn(tictactoe.X, tictactoe.Move{Col: 5, Row: 0})

		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("X wins", func(t *testing.T) {
		// Given: X completes the top row while O plays the middle row
		game := NewGame()
		playAll(t, game,
			tictactoe.Move{Col: 0, Row: 0}, tictactoe.Move{Col: 0, Row: 1},
			tictactoe.Move{Col: 1, Row: 0}, tictactoe.Move{Col: 1, Row: 1},
			tictactoe.Move{Col: 2, Row: 0},
		)

		// Then: the game is finished with X as the winner and 4 empty cells
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, tictactoe.Score(-5), game.Score)
		assert.Equal(t, tictactoe.Score(5), game.HumanScore())

		// And: no more turns are accepted
		err := game.MakeTurn(tictactoe.O, tictactoe.Move{Col: 2, Row: 2})
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a game filling the board without lines
		game := NewGame()
		playAll(t, game,
			tictactoe.Move{Col: 0, Row: 0}, tictactoe.Move{Col: 1, Row: 0},
			tictactoe.Move{Col: 2, Row: 0}, tictactoe.Move{Col: 1, Row: 1},
			tictactoe.Move{Col: 0, Row: 1}, tictactoe.Move{Col: 0, Row: 2},
			tictactoe.Move{Col: 2, Row: 1}, tictactoe.Move{Col: 2, Row: 2},
			tictactoe.Move{Col: 1, Row: 2},
		)

		// Then: the game is a tie
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, tictactoe.Score(0), game.Score)
	})
}
