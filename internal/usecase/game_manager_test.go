package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type mockPositionRepo struct {
	mock.Mock
}

func (that *mockPositionRepo) SaveAll(ctx context.Context, values map[uint32]tictactoe.Score) error {
	args := that.Called(ctx, values)
	return args.Error(0)
}

func (that *mockPositionRepo) GetAll(ctx context.Context) (map[uint32]tictactoe.Score, error) {
	args := that.Called(ctx)
	return args.Get(0).(map[uint32]tictactoe.Score), args.Error(1) //nolint: forcetypeassert // test double
}

func newManager(t *testing.T, opts search.Options, repo positionRepo) (*GameManager, *search.Engine) {
	t.Helper()

	engine, err := search.NewEngine(opts)
	require.NoError(t, err)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGameManager(logger, engine, repo), engine
}

func TestGameManager_Turns(t *testing.T) {
	t.Run("Human then computer", func(t *testing.T) {
		// Given: a new game
		manager, _ := newManager(t, search.DefaultOptions(), nil)
		game := manager.NewGame()

		// When: the human plays the center and the computer replies
		require.NoError(t, manager.HumanTurn(game, tictactoe.Move{Col: 1, Row: 1}))
		decision, _, err := manager.ComputerTurn(game)

		// Then: the computer took a corner, keeping the draw
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Equal(t, tictactoe.Move{Col: 0, Row: 0}, decision.Move)
		assert.Equal(t, tictactoe.Score(0), decision.Score)
		assert.Equal(t, decision.Board, game.Board)
		assert.True(t, game.HumanTurn())
	})

	t.Run("Human invalid move is recoverable", func(t *testing.T) {
		// Given: a game where the center is taken
		manager, _ := newManager(t, search.DefaultOptions(), nil)
		game := manager.NewGame()
		require.NoError(t, manager.HumanTurn(game, tictactoe.Move{Col: 1, Row: 1}))
		_, _, err := manager.ComputerTurn(game)
		require.NoError(t, err)

		// When: the human tries an occupied cell
		err = manager.HumanTurn(game, tictactoe.Move{Col: 1, Row: 1})

		// Then: ErrInvalidMove is returned and the human can still play
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.NoError(t, manager.HumanTurn(game, tictactoe.Move{Col: 2, Row: 2}))
	})

	t.Run("Computer out of turn", func(t *testing.T) {
		manager, _ := newManager(t, search.DefaultOptions(), nil)

		_, _, err := manager.ComputerTurn(manager.NewGame())

		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Recursion exhaustion ends the search cleanly", func(t *testing.T) {
		// Given: an engine that cannot look far enough
		manager, engine := newManager(t, search.Options{Algorithm: search.Minimax, MaxDepth: 2}, nil)
		game := manager.NewGame()
		require.NoError(t, manager.HumanTurn(game, tictactoe.Move{Col: 0, Row: 0}))
		before := *game

		// When: the computer searches
		_, _, err := manager.ComputerTurn(game)

		// Then: ErrRecursionExhausted is returned and the game is untouched
		require.ErrorIs(t, err, apperror.ErrRecursionExhausted)
		assert.Equal(t, before, *game)
		assert.Zero(t, engine.Stats().MinimaxEntries)
	})

	t.Run("Computer never loses a full game", func(t *testing.T) {
		// Given: a human who always plays the first free cell
		manager, _ := newManager(t, search.DefaultOptions(), nil)
		game := manager.NewGame()

		// When: the game is played to the end
		for !game.IsFinished() {
			if game.HumanTurn() {
				require.NoError(t, manager.HumanTurn(game, tictactoe.ValidMoves(game.Board)[0]))
				continue
			}
			_, _, err := manager.ComputerTurn(game)
			require.NoError(t, err)
		}

		// Then: the computer won
		assert.Equal(t, "O", game.Winner)
		assert.Negative(t, game.HumanScore())

		// And: further turns are rejected
		_, _, err := manager.ComputerTurn(game)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameManager_Analyze(t *testing.T) {
	manager, _ := newManager(t, search.DefaultOptions(), nil)

	decision, err := manager.Analyze(tictactoe.NewBoard())

	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, tictactoe.Score(0), decision.Score)
}

func TestGameManager_Warm(t *testing.T) {
	ctx := context.Background()

	t.Run("Imports stored positions", func(t *testing.T) {
		// Given: a repository holding the solved root
		repo := &mockPositionRepo{}
		manager, engine := newManager(t, search.DefaultOptions(), repo)

		stored := map[uint32]tictactoe.Score{tictactoe.NewBoard().Key(): 0}
		repo.On("GetAll", ctx).Return(stored, nil).Once()

		// When: warming the engine
		err := manager.Warm(ctx)

		// Then: the engine table holds the stored values
		require.NoError(t, err)
		assert.Equal(t, stored, engine.Export())
		repo.AssertExpectations(t)
	})

	t.Run("Returns repository error", func(t *testing.T) {
		repo := &mockPositionRepo{}
		manager, _ := newManager(t, search.DefaultOptions(), repo)

		repo.On("GetAll", ctx).Return(map[uint32]tictactoe.Score(nil), errRedisDown).Once()

		err := manager.Warm(ctx)

		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("No repository", func(t *testing.T) {
		manager, _ := newManager(t, search.DefaultOptions(), nil)

		assert.NoError(t, manager.Warm(ctx))
		assert.NoError(t, manager.Persist(ctx))
	})
}

func TestGameManager_Persist(t *testing.T) {
	ctx := context.Background()

	// Given: a manager whose engine played one computer move
	repo := &mockPositionRepo{}
	manager, engine := newManager(t, search.DefaultOptions(), repo)

	game := &entity.Game{Board: tictactoe.NewBoard(), Status: entity.StatusOngoing}
	require.NoError(t, manager.HumanTurn(game, tictactoe.Move{Col: 2, Row: 2}))
	_, _, err := manager.ComputerTurn(game)
	require.NoError(t, err)

	repo.On("SaveAll", ctx, engine.Export()).Return(nil).Once()

	// When: persisting
	err = manager.Persist(ctx)

	// Then: the exact table is handed to the repository
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
