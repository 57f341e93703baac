package search

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
	ErrInvalidMaxDepth  = errors.New("max depth must be positive")
)

// window is the alpha-beta memoization key. The result of a fail-soft search
// depends on the bounds it was called with, so they are part of the key.
type window struct {
	board tictactoe.Board
	alpha tictactoe.Score
	beta  tictactoe.Score
}

// Engine owns the memoization tables of one session. Exact minimax values
// and alpha-beta values live in separate tables and never mix.
type Engine struct {
	opts Options

	nodes     *nodeTable
	minimax   *table[tictactoe.Board]
	alphabeta *table[window]

	stats counters
}

func NewEngine(opts Options) (*Engine, error) {
	if opts.MaxDepth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxDepth, opts.MaxDepth)
	}

	if opts.Algorithm != Minimax && opts.Algorithm != AlphaBeta {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, opts.Algorithm)
	}

	return &Engine{
		opts:  opts,
		nodes: newNodeTable(),
		minimax: newTable(func(b tictactoe.Board) string {
			return strconv.FormatUint(uint64(b.Key()), 10)
		}),
		alphabeta: newTable(func(w window) string {
			return fmt.Sprintf("%d:%d:%d", w.board.Key(), w.alpha, w.beta)
		}),
	}, nil
}

func (that *Engine) Options() Options {
	return that.opts
}

// ValidMoves is the cached move list of b.
func (that *Engine) ValidMoves(b tictactoe.Board) []tictactoe.Move {
	moves := that.expand(b).moves
	return append(make([]tictactoe.Move, 0, len(moves)), moves...)
}

// TerminalScore is the cached terminal score of b.
func (that *Engine) TerminalScore(b tictactoe.Board) tictactoe.Score {
	return that.expand(b).score
}

func (that *Engine) IsTerminal(b tictactoe.Board) bool {
	n := that.expand(b)
	return n.score != 0 || len(n.moves) == 0
}

func (that *Engine) Stats() Stats {
	return Stats{
		Nodes:            that.stats.nodes.Load(),
		Expansions:       that.stats.expansions.Load(),
		CacheHits:        that.stats.cacheHits.Load(),
		Cutoffs:          that.stats.cutoffs.Load(),
		NodeEntries:      that.nodes.len(),
		MinimaxEntries:   that.minimax.len(),
		AlphaBetaEntries: that.alphabeta.len(),
	}
}

func (that *Engine) ResetStats() {
	that.stats.reset()
}

// Reset drops every cached result.
func (that *Engine) Reset() {
	that.nodes.reset()
	that.minimax.reset()
	that.alphabeta.reset()
	that.stats.reset()
}

func (that *Engine) expand(b tictactoe.Board) *node {
	n, created := that.nodes.get(b)
	if created {
		that.stats.expansions.Add(1)
	}
	return n
}

func (that *Engine) countHit(hit bool) {
	if hit {
		that.stats.cacheHits.Add(1)
	}
}
