package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrBadInput = errors.New("expected a move as \"row, column\"")

// parseMove reads "row, column" with 1-based coordinates.
func parseMove(line string) (tictactoe.Move, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return tictactoe.Move{}, fmt.Errorf("%w: %q", ErrBadInput, line)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return tictactoe.Move{}, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return tictactoe.Move{}, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	return tictactoe.Move{Col: col - 1, Row: row - 1}, nil
}
