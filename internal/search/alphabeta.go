package search

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// AlphaBetaRoot searches b with the full window. The result equals
// UtilityValue(b).
func (that *Engine) AlphaBetaRoot(b tictactoe.Board) (tictactoe.Score, error) {
	return that.AlphaBetaValue(b, tictactoe.MinScore, tictactoe.MaxScore)
}

// AlphaBetaValue is a fail-soft alpha-beta search. Only a full window call
// returns the exact value; narrower windows may return a bound.
func (that *Engine) AlphaBetaValue(b tictactoe.Board, alpha, beta tictactoe.Score) (tictactoe.Score, error) {
	return that.alphaBeta(b, alpha, beta, 0)
}

func (that *Engine) alphaBeta(b tictactoe.Board, alpha, beta tictactoe.Score, depth int) (tictactoe.Score, error) {
	that.stats.nodes.Add(1)

	key := window{board: b, alpha: alpha, beta: beta}
	score, hit, err := that.alphabeta.solve(key, depth, func() (tictactoe.Score, error) {
		return that.computeAlphaBeta(b, alpha, beta, depth)
	})
	that.countHit(hit)

	return score, err
}

func (that *Engine) computeAlphaBeta(b tictactoe.Board, alpha, beta tictactoe.Score, depth int) (tictactoe.Score, error) {
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

	if b.Player() == tictactoe.O {
		value := tictactoe.MinScore
		for _, child := range n.children {
			childValue, err := that.alphaBeta(child, alpha, beta, depth+1)
			if err != nil {
				return 0, err
			}

			value = max(value, childValue)
			alpha = max(alpha, value)
			if alpha > beta {
				that.stats.cutoffs.Add(1)
				break
			}
		}
		return value, nil
	}

	value := tictactoe.MaxScore
	for _, child := range n.children {
		childValue, err := that.alphaBeta(child, alpha, beta, depth+1)
		if err != nil {
			return 0, err
		}

		value = min(value, childValue)
		beta = min(beta, value)
		if alpha > beta {
			that.stats.cutoffs.Add(1)
			break
		}
	}
	return value, nil
}
