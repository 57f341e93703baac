package search

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Decision is the move chosen for the side to move, the board it leads to
// and that board's game value.
type Decision struct {
	Move  tictactoe.Move
	Board tictactoe.Board
	Score tictactoe.Score
}

// BestMove picks the child with the highest value when O is to move and the
// lowest when X is. Ties go to the first child in ValidMoves order.
// It returns nil without error when b has no valid moves.
func (that *Engine) BestMove(b tictactoe.Board) (*Decision, error) {
	n := that.expand(b)
	if len(n.children) == 0 {
		return nil, nil //nolint: nilnil // no move is a valid answer for a full board
	}

	scores, err := that.scoreChildren(n.children)
	if err != nil {
		return nil, fmt.Errorf("failed to score children: %w", err)
	}

	maximizing := b.Player() == tictactoe.O
	best := 0
	for i := 1; i < len(scores); i++ {
		if (maximizing && scores[i] > scores[best]) || (!maximizing && scores[i] < scores[best]) {
			best = i
		}
	}

	return &Decision{
		Move:  n.moves[best],
		Board: n.children[best],
		Score: scores[best],
	}, nil
}

// Evaluate returns the exact value of b with the configured algorithm.
func (that *Engine) Evaluate(b tictactoe.Board) (tictactoe.Score, error) {
	if that.opts.Algorithm == AlphaBeta {
		return that.AlphaBetaRoot(b)
	}
	return that.UtilityValue(b)
}

func (that *Engine) scoreChildren(children []tictactoe.Board) ([]tictactoe.Score, error) {
	if !that.opts.Parallel {
		scores := make([]tictactoe.Score, 0, len(children))
		for _, child := range children {
			score, err := that.Evaluate(child)
			if err != nil {
				return nil, err
			}
			scores = append(scores, score)
		}
		return scores, nil
	}

	scores := make([]tictactoe.Score, len(children))
	g := errgroup.Group{}
	lo.ForEach(children, func(child tictactoe.Board, i int) {
		g.Go(func() error {
			score, err := that.Evaluate(child)
			if err != nil {
				return err
			}
			scores[i] = score
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck // wrapped by the caller
	}

	return scores, nil
}
