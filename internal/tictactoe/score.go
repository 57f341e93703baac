package tictactoe

// Score is the signed utility of a position. Negative values favour X,
// positive values favour O, and the magnitude rewards faster wins.
type Score int

const (
	MinScore Score = -(Size*Size + 1)
	MaxScore Score = Size*Size + 1
)

// WinCombos holds the eight lines as row-major cell indexes.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Board) at(index int) Mark {
	return that.cells[index/Size][index%Size]
}

// Winner returns the mark owning a complete line, X checked before O,
// or Empty when there is none.
func Winner(b Board) Mark {
	for _, mark := range [...]Mark{X, O} {
		for _, combo := range WinCombos {
			if b.at(combo[0]) == mark && b.at(combo[1]) == mark && b.at(combo[2]) == mark {
				return mark
			}
		}
	}
	return Empty
}

// TerminalScore is 0 when nobody has a line, which covers both a draw and a
// game still in progress. Use IsTerminal to tell them apart.
func TerminalScore(b Board) Score {
	winner := Winner(b)
	if winner == Empty {
		return 0
	}
	return Score(winner) * Score(1+b.EmptyCount())
}

func IsTerminal(b Board) bool {
	return TerminalScore(b) != 0 || b.EmptyCount() == 0
}
