package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/hangman/internal/hangman"
	"github.com/lox/hangman/internal/roundid"
)

// Console text. The game speaks Spanish only.
const (
	wordPrompt   = "Jugador 1, introduzca la palabra a adivinar "
	letterPrompt = "Introduce una letra: "
	guessHeader  = "Jugador 2: ¡Adivina la palabra!"

	msgWordTooShort   = "La palabra debe de tener al menos %d caracteres."
	msgWordNotLetters = "La palabra solo puede contener letras."
	msgNotSingle      = "Como máximo una letra."
	msgLetterNotAlpha = "Solo se permiten letras."
	msgLetterRepeated = "Letra repetida, utiliza otra."
	msgHit            = "¡Bien! La letra '%c' está en la palabra."
	msgMiss           = "La letra '%c' no está en la palabra."
	msgWon            = "¡Felicidades! Has adivinado la palabra: %s"
	msgLost           = "Te has quedado sin intentos. La palabra era: %s"
)

// Options configures a Controller.
type Options struct {
	Rules hangman.Rules
	// ClearLines blank lines are written after the secret is entered.
	// Zero means hangman.DefaultClearLines.
	ClearLines int
	// MaskSecret reads the secret without echo when the prompter supports it.
	MaskSecret bool
	Logger     zerolog.Logger
	Clock      quartz.Clock
	IDs        *roundid.Generator
	Styles     *Styles
}

// RoundSummary describes a finished round.
type RoundSummary struct {
	ID                string
	Secret            string
	Phase             hangman.Phase
	Used              []rune
	Misses            int
	AttemptsRemaining int
	Duration          time.Duration
}

// Won reports whether the secret was fully revealed.
func (s RoundSummary) Won() bool {
	return s.Phase == hangman.Won
}

// Controller drives a single round on the console, from secret entry to win
// or loss. Invalid input is rejected with a message and asked for again, so
// the round itself only ever sees valid words and letters.
type Controller struct {
	prompter   Prompter
	out        io.Writer
	rules      hangman.Rules
	clearLines int
	maskSecret bool
	logger     zerolog.Logger
	clock      quartz.Clock
	ids        *roundid.Generator
	styles     *Styles
}

// NewController creates a controller reading from p and writing to out.
func NewController(p Prompter, out io.Writer, opts Options) *Controller {
	if opts.Rules == (hangman.Rules{}) {
		opts.Rules = hangman.DefaultRules()
	}
	if opts.ClearLines == 0 {
		opts.ClearLines = hangman.DefaultClearLines
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.IDs == nil {
		opts.IDs = roundid.NewGenerator(nil)
	}
	if opts.Styles == nil {
		opts.Styles = PlainStyles()
	}

	return &Controller{
		prompter:   p,
		out:        out,
		rules:      opts.Rules,
		clearLines: opts.ClearLines,
		maskSecret: opts.MaskSecret,
		logger:     opts.Logger.With().Str("component", "round").Logger(),
		clock:      opts.Clock,
		ids:        opts.IDs,
		styles:     opts.Styles,
	}
}

// PlayRound plays one full round. It returns an error only when input ends
// or ctx is cancelled before the round finishes.
func (c *Controller) PlayRound(ctx context.Context) (RoundSummary, error) {
	id := c.ids.Generate()
	logger := c.logger.With().Str("round_id", id).Logger()
	start := c.clock.Now()

	logger.Debug().Stringer("phase", hangman.AwaitingWord).Msg("Waiting for secret word")

	secret, err := c.ReadWord(ctx)
	if err != nil {
		return RoundSummary{ID: id}, err
	}

	c.clearScreen()
	c.println(guessHeader)
	c.println("")

	round := hangman.NewRound(secret, c.rules, hangman.WithTransitionHook(func(from, to hangman.Phase) {
		logger.Debug().Stringer("from", from).Stringer("to", to).Msg("Phase transition")
	}))
	logger.Info().Int("length", len([]rune(secret))).Int("max_attempts", c.rules.MaxAttempts).Msg("Round started")

	for !round.Phase().Terminal() {
		c.print(round.Status())

		letter, err := c.ReadLetter(ctx, round.Used())
		if err != nil {
			return c.summary(id, round, start), err
		}

		result, err := round.Guess(letter)
		if err != nil {
			// ReadLetter already rejected repeats, so this is a bug.
			return c.summary(id, round, start), fmt.Errorf("guess %q: %w", letter, err)
		}
		logger.Debug().
			Str("letter", string(result.Letter)).
			Bool("hit", result.Hit).
			Int("revealed", result.Revealed).
			Int("attempts_remaining", round.AttemptsRemaining()).
			Msg("Letter guessed")

		c.announce(round, result)
	}

	summary := c.summary(id, round, start)
	logger.Info().
		Stringer("outcome", summary.Phase).
		Int("misses", summary.Misses).
		Int("guesses", len(summary.Used)).
		Dur("duration", summary.Duration).
		Msg("Round finished")

	return summary, nil
}

// ReadWord asks player one for the secret until a valid word is given.
func (c *Controller) ReadWord(ctx context.Context) (string, error) {
	for {
		raw, err := c.promptWord(ctx)
		if err != nil {
			return "", err
		}

		word, err := hangman.ValidateWord(raw, c.rules.MinWordLength)
		if err == nil {
			return word, nil
		}

		c.logger.Debug().Str("reason", rejectReason(err)).Msg("Rejected secret word")
		switch {
		case errors.Is(err, hangman.ErrTooShort):
			c.println(c.styles.Error.Render(fmt.Sprintf(msgWordTooShort, c.rules.MinWordLength)))
		case errors.Is(err, hangman.ErrNonAlphabetic):
			c.println(c.styles.Error.Render(msgWordNotLetters))
		default:
			return "", err
		}
	}
}

// ReadLetter asks player two for a guess until a valid, unused letter is given.
func (c *Controller) ReadLetter(ctx context.Context, used []rune) (rune, error) {
	for {
		raw, err := c.prompter.Prompt(ctx, letterPrompt)
		if err != nil {
			return 0, err
		}

		letter, err := hangman.ValidateLetter(raw, used)
		if err == nil {
			return letter, nil
		}

		c.logger.Debug().Str("reason", rejectReason(err)).Msg("Rejected letter")
		switch {
		case errors.Is(err, hangman.ErrNotSingleCharacter):
			c.println(c.styles.Error.Render(msgNotSingle))
		case errors.Is(err, hangman.ErrNonAlphabetic):
			c.println(c.styles.Error.Render(msgLetterNotAlpha))
		case errors.Is(err, hangman.ErrAlreadyUsed):
			c.println(c.styles.Error.Render(msgLetterRepeated))
		default:
			return 0, err
		}
	}
}

func (c *Controller) promptWord(ctx context.Context) (string, error) {
	if sp, ok := c.prompter.(SecretPrompter); ok && c.maskSecret {
		return sp.PromptSecret(ctx, wordPrompt)
	}
	return c.prompter.Prompt(ctx, wordPrompt)
}

func (c *Controller) announce(round *hangman.Round, result hangman.GuessResult) {
	if result.Hit {
		c.println(c.styles.Success.Render(fmt.Sprintf(msgHit, result.Letter)))
	} else {
		c.println(c.styles.Warning.Render(fmt.Sprintf(msgMiss, result.Letter)))
	}

	switch round.Phase() {
	case hangman.Won:
		c.println("")
		c.println(c.styles.Winner.Render(fmt.Sprintf(msgWon, round.Secret())))
	case hangman.Lost:
		c.println("")
		c.println(c.styles.Error.Render(fmt.Sprintf(msgLost, round.Secret())))
	}
}

// rejectReason describes a validation failure without echoing the input,
// which may be the secret word.
func rejectReason(err error) string {
	var verr *hangman.ValidationError
	if errors.As(err, &verr) {
		return verr.Kind.Error()
	}
	return err.Error()
}

// clearScreen scrolls the secret out of view with blank lines.
func (c *Controller) clearScreen() {
	c.print(strings.Repeat("\n", c.clearLines))
}

func (c *Controller) summary(id string, round *hangman.Round, start time.Time) RoundSummary {
	return RoundSummary{
		ID:                id,
		Secret:            round.Secret(),
		Phase:             round.Phase(),
		Used:              round.Used(),
		Misses:            round.Misses(),
		AttemptsRemaining: round.AttemptsRemaining(),
		Duration:          c.clock.Since(start),
	}
}

func (c *Controller) print(s string) {
	_, _ = fmt.Fprint(c.out, s)
}

func (c *Controller) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}
