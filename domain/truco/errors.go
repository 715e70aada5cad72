package truco

import (
	"errors"
	"fmt"
)

// Error kinds. Every engine error wraps exactly one of them.
var (
	// ErrValidation marks a rejected input; the caller should ask again.
	ErrValidation = errors.New("validation error")
	// ErrLifecycle marks an operation issued in the wrong state of the hand or match.
	ErrLifecycle = errors.New("lifecycle error")
)

var (
	ErrInvalidStake        = fmt.Errorf("%w: invalid stake for the current balance", ErrValidation)
	ErrCardIndexOutOfRange = fmt.Errorf("%w: card index out of range", ErrValidation)

	ErrHandNotActive    = fmt.Errorf("%w: no hand in progress", ErrLifecycle)
	ErrHandInProgress   = fmt.Errorf("%w: a hand is already in progress", ErrLifecycle)
	ErrMatchAlreadyOver = fmt.Errorf("%w: the match is over, reset it to play again", ErrLifecycle)
)

// IsValidation reports whether err was caused by invalid caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsLifecycle reports whether err was caused by calling an operation in the wrong state.
func IsLifecycle(err error) bool {
	return errors.Is(err, ErrLifecycle)
}
