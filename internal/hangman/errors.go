package hangman

import (
	"errors"
	"fmt"
)

// Validation failure kinds. A *ValidationError unwraps to one of these.
var (
	ErrTooShort           = errors.New("word is too short")
	ErrNonAlphabetic      = errors.New("input contains non-letter characters")
	ErrNotSingleCharacter = errors.New("input is not a single character")
	ErrAlreadyUsed        = errors.New("letter has already been used")
)

// ErrRoundOver is returned when guessing in a round that has already been won or lost.
var ErrRoundOver = errors.New("round is over")

// ValidationError describes rejected word or letter input.
type ValidationError struct {
	Kind  error
	Input string
	// MinLength is set for ErrTooShort.
	MinLength int
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Kind, ErrTooShort) {
		return fmt.Sprintf("%q: %v (minimum %d letters)", e.Input, e.Kind, e.MinLength)
	}
	return fmt.Sprintf("%q: %v", e.Input, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
