package search

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/samber/lo"
)

var ErrInvalidScore = errors.New("score is not a game value")

// Export returns every exact minimax value keyed by Board.Key.
// Alpha-beta values are bounds and are never exported.
func (that *Engine) Export() map[uint32]tictactoe.Score {
	that.minimax.mu.RLock()
	defer that.minimax.mu.RUnlock()

	return lo.MapEntries(that.minimax.values, func(b tictactoe.Board, score tictactoe.Score) (uint32, tictactoe.Score) {
		return b.Key(), score
	})
}

// Import seeds the minimax table with values produced by Export. Nothing is
// stored when a key does not decode, a score lies outside [MinScore, MaxScore]
// or a finished position carries a score other than its terminal score.
func (that *Engine) Import(values map[uint32]tictactoe.Score) error {
	boards := make(map[tictactoe.Board]tictactoe.Score, len(values))
	for key, score := range values {
		b, err := tictactoe.ParseKey(key)
		if err != nil {
			return fmt.Errorf("failed to import position: %w", err)
		}

		if score < tictactoe.MinScore || score > tictactoe.MaxScore {
			return fmt.Errorf("failed to import position %d: %w: %d", key, ErrInvalidScore, score)
		}

		if tictactoe.IsTerminal(b) && score != tictactoe.TerminalScore(b) {
			return fmt.Errorf("failed to import position %d: %w: %d on a finished board scored %d",
				key, ErrInvalidScore, score, tictactoe.TerminalScore(b))
		}

		boards[b] = score
	}

	that.minimax.mu.Lock()
	defer that.minimax.mu.Unlock()

	for b, score := range boards {
		that.minimax.values[b] = score
	}

	return nil
}
