package search

import (
	"fmt"
	"strings"
)

type Algorithm string

const (
	Minimax   Algorithm = "minimax"
	AlphaBeta Algorithm = "alphabeta"
)

// DefaultMaxDepth covers a whole game from the empty board.
const DefaultMaxDepth = 9

// Options tune an Engine. The zero value is not valid, start from DefaultOptions.
type Options struct {
	Algorithm Algorithm
	// MaxDepth bounds the plies below a search root. Concurrent searches only
	// share an in-flight computation when they reached the position at the
	// same depth, so a deeper caller running out of budget never fails a
	// shallower one.
	MaxDepth int
	Parallel bool
}

func DefaultOptions() Options {
	return Options{
		Algorithm: Minimax,
		MaxDepth:  DefaultMaxDepth,
	}
}

// ParseAlgorithm accepts the names used in configuration files.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case Minimax, "":
		return Minimax, nil
	case AlphaBeta, "alpha-beta":
		return AlphaBeta, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
