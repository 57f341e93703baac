package tictactoe

import "fmt"

const keySpace = 19683 * 2 // 3^9 grids times two players

// Key packs the board into a canonical integer: base-3 cell digits in
// row-major order (0 empty, 1 X, 2 O), doubled, plus one when O is to move.
func (that Board) Key() uint32 {
	var code uint32
	for i := range Size * Size {
		code *= 3
		switch that.at(i) {
		case X:
			code++
		case O:
			code += 2
		}
	}

	code *= 2
	if that.player == O {
		code++
	}

	return code
}

// ParseKey is the inverse of Board.Key.
func ParseKey(key uint32) (Board, error) {
	if key >= keySpace {
		return Board{}, fmt.Errorf("%w: key %d out of range", ErrInvalidBoard, key)
	}

	var b Board
	b.player = X
	if key%2 == 1 {
		b.player = O
	}
	key /= 2

	for i := Size*Size - 1; i >= 0; i-- {
		switch key % 3 {
		case 1:
			b.cells[i/Size][i%Size] = X
		case 2:
			b.cells[i/Size][i%Size] = O
		}
		key /= 3
	}

	return b, nil
}
