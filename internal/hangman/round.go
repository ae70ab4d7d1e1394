package hangman

import (
	"slices"
	"strings"
	"unicode"
)

// TransitionFunc observes a phase change of a round.
type TransitionFunc func(from, to Phase)

// RoundOption configures a Round during creation.
type RoundOption func(*Round)

// WithTransitionHook registers a function called on every phase change.
func WithTransitionHook(fn TransitionFunc) RoundOption {
	return func(r *Round) {
		r.onTransition = fn
	}
}

// GuessResult describes the effect of a single guess.
type GuessResult struct {
	Letter rune
	Hit    bool
	// Revealed is the number of positions uncovered by this guess.
	Revealed int
	Phase    Phase
}

// Round holds the state of one round: the secret, the masked word, the used
// letters in guess order and the remaining attempts. The secret is fixed at
// creation; everything else changes only through Guess.
type Round struct {
	secret            string
	masked            string
	used              []rune
	attemptsRemaining int
	rules             Rules
	phase             Phase
	onTransition      TransitionFunc
}

// NewRound starts a round for an already validated secret.
//
// Example usage:
//
//	r := NewRound("PERRO", DefaultRules())
//	r.Guess('P') // masked is now "P____"
//
//	// Observing the state machine
//	r := NewRound("PERRO", rules, WithTransitionHook(func(from, to Phase) {
//	    logger.Debug().Stringer("from", from).Stringer("to", to).Msg("transition")
//	}))
func NewRound(secret string, rules Rules, opts ...RoundOption) *Round {
	if rules.Placeholder == 0 {
		rules.Placeholder = DefaultPlaceholder
	}

	r := &Round{
		secret:            secret,
		masked:            Mask(secret, rules.Placeholder),
		attemptsRemaining: rules.MaxAttempts,
		rules:             rules,
		phase:             AwaitingWord,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.transition(AwaitingLetter)
	return r
}

// Guess applies a letter to the round. The letter is uppercased; guessing a
// letter twice returns ErrAlreadyUsed and guessing after the round ended
// returns ErrRoundOver. Neither changes the state.
func (r *Round) Guess(letter rune) (GuessResult, error) {
	letter = unicode.ToUpper(letter)

	if r.phase.Terminal() {
		return GuessResult{Letter: letter, Phase: r.phase}, ErrRoundOver
	}
	if slices.Contains(r.used, letter) {
		return GuessResult{Letter: letter, Phase: r.phase}, &ValidationError{Kind: ErrAlreadyUsed, Input: string(letter)}
	}

	r.used = append(r.used, letter)
	r.transition(Evaluating)

	result := GuessResult{Letter: letter}
	if strings.ContainsRune(r.secret, letter) {
		before := r.hidden()
		r.masked = Reveal(r.secret, r.masked, letter)
		result.Hit = true
		result.Revealed = before - r.hidden()

		if r.hidden() == 0 {
			r.transition(Won)
		} else {
			r.transition(AwaitingLetter)
		}
	} else {
		r.attemptsRemaining--
		if r.attemptsRemaining <= 0 {
			r.attemptsRemaining = 0
			r.transition(Lost)
		} else {
			r.transition(AwaitingLetter)
		}
	}

	result.Phase = r.phase
	return result, nil
}

// Secret returns the word being guessed.
func (r *Round) Secret() string { return r.secret }

// Masked returns the secret with unguessed letters replaced by the placeholder.
func (r *Round) Masked() string { return r.masked }

// Used returns a copy of the guessed letters in guess order.
func (r *Round) Used() []rune { return slices.Clone(r.used) }

// AttemptsRemaining returns how many wrong guesses are still allowed.
func (r *Round) AttemptsRemaining() int { return r.attemptsRemaining }

// Misses returns the number of wrong guesses so far.
func (r *Round) Misses() int { return r.rules.MaxAttempts - r.attemptsRemaining }

// Phase returns the current state machine phase.
func (r *Round) Phase() Phase { return r.phase }

// Status returns the renderable view of the round.
func (r *Round) Status() string {
	return RenderStatus(r.masked, r.attemptsRemaining, r.used)
}

func (r *Round) hidden() int {
	return strings.Count(r.masked, string(r.rules.Placeholder))
}

func (r *Round) transition(to Phase) {
	from := r.phase
	r.phase = to
	if r.onTransition != nil {
		r.onTransition(from, to)
	}
}

// Mask returns a string of the same rune length as secret made only of the placeholder.
func Mask(secret string, placeholder rune) string {
	return strings.Repeat(string(placeholder), len([]rune(secret)))
}

// Reveal uncovers every position of masked where secret holds letter. Other
// positions are left untouched, so applying the same letter twice has no
// further effect. Comparison is exact; callers pass uppercase letters.
func Reveal(secret, masked string, letter rune) string {
	out := []rune(masked)
	for i, r := range []rune(secret) {
		if i < len(out) && r == letter {
			out[i] = letter
		}
	}
	return string(out)
}
