package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	// Given: a board with X in the corner and O in the center
	b, err := tictactoe.Apply(tictactoe.NewBoard(), tictactoe.Move{Col: 0, Row: 0})
	require.NoError(t, err)
	b, err = tictactoe.Apply(b, tictactoe.Move{Col: 1, Row: 1})
	require.NoError(t, err)

	renderer := NewRenderer(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii)))

	// When: rendering it without colors
	out := renderer.Render(b)

	// Then: the grid is drawn with three text lines per row
	expected := strings.Join([]string{
		"=======================",
		"       |       |       ",
		"   X   |       |       ",
		"       |       |       ",
		"-------+-------+-------",
		"       |       |       ",
		"       |   O   |       ",
		"       |       |       ",
		"-------+-------+-------",
		"       |       |       ",
		"       |       |       ",
		"       |       |       ",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestRenderer_RenderColored(t *testing.T) {
	renderer := NewRenderer(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI)))
	b, err := tictactoe.Apply(tictactoe.NewBoard(), tictactoe.Move{Col: 2, Row: 2})
	require.NoError(t, err)

	out := renderer.Render(b)

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "X")
}
