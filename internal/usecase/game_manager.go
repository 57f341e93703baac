package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type engine interface {
	BestMove(b tictactoe.Board) (*search.Decision, error)
	Export() map[uint32]tictactoe.Score
	Import(values map[uint32]tictactoe.Score) error
	Stats() search.Stats
	ResetStats()
}

type positionRepo interface {
	SaveAll(ctx context.Context, values map[uint32]tictactoe.Score) error
	GetAll(ctx context.Context) (map[uint32]tictactoe.Score, error)
}

// GameManager drives human versus computer games on top of one engine, so
// every game of the session shares the engine tables.
type GameManager struct {
	logger *slog.Logger

	engine       engine
	positionRepo positionRepo
}

// NewGameManager - positionRepo may be nil, then Warm and Persist do nothing.
func NewGameManager(logger *slog.Logger, engine engine, positionRepo positionRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		engine:       engine,
		positionRepo: positionRepo,
	}
}

func (that *GameManager) NewGame() *entity.Game {
	return entity.NewGame()
}

func (that *GameManager) HumanTurn(game *entity.Game, move tictactoe.Move) error {
	if err := game.MakeTurn(tictactoe.X, move); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	return nil
}

// ComputerTurn plays the engine's best move for O. It returns the decision
// and the time spent searching.
func (that *GameManager) ComputerTurn(game *entity.Game) (*search.Decision, time.Duration, error) {
	log := that.logger.With("method", "ComputerTurn")

	if game.IsFinished() {
		return nil, 0, apperror.ErrGameFinished
	}

	if game.HumanTurn() {
		return nil, 0, apperror.ErrNotYourTurn
	}

	that.engine.ResetStats()
	started := time.Now()

	decision, err := that.engine.BestMove(game.Board)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search best move: %w", err)
	}

	elapsed := time.Since(started)

	if decision == nil {
		game.UpdateGameState()
		return nil, elapsed, apperror.ErrGameFinished
	}

	if err = game.MakeTurn(tictactoe.O, decision.Move); err != nil {
		return nil, 0, fmt.Errorf("failed make turn: %w", err)
	}

	log.Info("computer moved",
		"move", decision.Move.String(),
		"score", int(decision.Score),
		"elapsed", elapsed,
		"stats", that.engine.Stats().String(),
	)

	return decision, elapsed, nil
}

// Analyze returns the best move for whoever is to move on b.
func (that *GameManager) Analyze(b tictactoe.Board) (*search.Decision, error) {
	decision, err := that.engine.BestMove(b)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze position: %w", err)
	}

	return decision, nil
}

// Warm loads solved positions from the repository into the engine.
func (that *GameManager) Warm(ctx context.Context) error {
	log := that.logger.With("method", "Warm")

	if that.positionRepo == nil {
		return nil
	}

	values, err := that.positionRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load positions: %w", err)
	}

	if err = that.engine.Import(values); err != nil {
		return fmt.Errorf("failed to import positions: %w", err)
	}

	log.Info("positions loaded", "count", len(values))

	return nil
}

// Persist writes the engine's exact values back to the repository.
func (that *GameManager) Persist(ctx context.Context) error {
	log := that.logger.With("method", "Persist")

	if that.positionRepo == nil {
		return nil
	}

	values := that.engine.Export()
	if err := that.positionRepo.SaveAll(ctx, values); err != nil {
		return fmt.Errorf("failed to save positions: %w", err)
	}

	log.Info("positions saved", "count", len(values))

	return nil
}
