package search

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// UtilityValue is the exact game value of b under optimal play from both
// sides. O maximizes, X minimizes.
func (that *Engine) UtilityValue(b tictactoe.Board) (tictactoe.Score, error) {
	return that.utility(b, 0)
}

func (that *Engine) utility(b tictactoe.Board, depth int) (tictactoe.Score, error) {
	that.stats.nodes.Add(1)

	score, hit, err := that.minimax.solve(b, depth, func() (tictactoe.Score, error) {
		return that.computeUtility(b, depth)
	})
	that.countHit(hit)

	return score, err
}

func (that *Engine) computeUtility(b tictactoe.Board, depth int) (tictactoe.Score, error) {
	n := that.expand(b)

	if n.score != 0 {
		return n.score, nil
	}

	if len(n.children) == 0 {
		return 0, nil
	}

	if depth >= that.opts.MaxDepth {
		return 0, fmt.Errorf("%w: deeper than %d plies", apperror.ErrRecursionExhausted, that.opts.MaxDepth)
	}

	maximizing := b.Player() == tictactoe.O

	best := tictactoe.MaxScore
	if maximizing {
		best = tictactoe.MinScore
	}

	for _, child := range n.children {
		value, err := that.utility(child, depth+1)
		if err != nil {
			return 0, err
		}

		if maximizing {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}

	return best, nil
}
