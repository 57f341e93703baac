package apperror

import "errors"

var (
	ErrInvalidMove        = errors.New("invalid move")
	ErrRecursionExhausted = errors.New("search recursion limit exhausted")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
)
