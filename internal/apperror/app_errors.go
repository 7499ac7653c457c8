package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidState = errors.New("invalid board state")

	// ErrGameFinished matches ErrInvalidState via errors.Is.
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidState)
)
