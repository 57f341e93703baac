package cli

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const defaultSpacing = 3

// Renderer draws a board as a large grid, one text cell per board cell
// padded by spacing on each side.
type Renderer struct {
	out     *termenv.Output
	spacing int
}

func NewRenderer(out *termenv.Output) *Renderer {
	return &Renderer{
		out:     out,
		spacing: defaultSpacing,
	}
}

func (that *Renderer) Render(b tictactoe.Board) string {
	width := that.spacing*2 + 1
	blank := strings.Repeat(" ", width)
	blankRow := strings.Join([]string{blank, blank, blank}, "|")
	separator := strings.Join([]string{strings.Repeat("-", width), strings.Repeat("-", width), strings.Repeat("-", width)}, "+")
	pad := strings.Repeat(" ", that.spacing)

	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", width*tictactoe.Size+2))

	for row := range tictactoe.Size {
		if row > 0 {
			sb.WriteString("\n" + separator)
		}

		symbols := make([]string, 0, tictactoe.Size)
		for col := range tictactoe.Size {
			symbols = append(symbols, pad+that.symbol(b.Cell(tictactoe.Move{Col: col, Row: row}))+pad)
		}

		sb.WriteString("\n" + blankRow)
		sb.WriteString("\n" + strings.Join(symbols, "|"))
		sb.WriteString("\n" + blankRow)
	}

	return sb.String()
}

func (that *Renderer) symbol(mark tictactoe.Mark) string {
	switch mark {
	case tictactoe.X:
		return that.out.String(mark.String()).Foreground(that.out.Color("4")).Bold().String()
	case tictactoe.O:
		return that.out.String(mark.String()).Foreground(that.out.Color("1")).Bold().String()
	default:
		return mark.String()
	}
}
