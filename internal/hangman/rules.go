package hangman

import "fmt"

const (
	DefaultMaxAttempts   = 5
	DefaultMinWordLength = 5
	DefaultPlaceholder   = '_'

	// DefaultClearLines blank lines hide the secret word once it is entered.
	DefaultClearLines = 50
	// DefaultReplayToken is the answer that starts another round.
	DefaultReplayToken = "s"
)

// Rules holds the fixed parameters of a round.
type Rules struct {
	MaxAttempts   int
	MinWordLength int
	Placeholder   rune
}

// DefaultRules returns the classic rules: five wrong guesses, words of at
// least five letters, underscores for hidden letters.
func DefaultRules() Rules {
	return Rules{
		MaxAttempts:   DefaultMaxAttempts,
		MinWordLength: DefaultMinWordLength,
		Placeholder:   DefaultPlaceholder,
	}
}

// Validate ensures the rules describe a playable round.
func (r Rules) Validate() error {
	if r.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", r.MaxAttempts)
	}
	if r.MinWordLength < 1 {
		return fmt.Errorf("min word length must be at least 1, got %d", r.MinWordLength)
	}
	// A letter placeholder would be indistinguishable from a revealed letter.
	if r.Placeholder == 0 || isLetters(string(r.Placeholder)) {
		return fmt.Errorf("placeholder must be a non-letter character, got %q", r.Placeholder)
	}
	return nil
}
