package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lox/hangman/internal/hangman"
)

const (
	banner       = "=== JUEGO DEL AHORCADO ==="
	replayPrompt = "¿Quieres jugar otra vez? (%s/n): "
	farewell     = "Gracias por jugar al Ahorcado. ¡Hasta pronto!"
)

// SessionStats counts the rounds played in one session.
type SessionStats struct {
	Rounds int
	Won    int
	Lost   int
}

func (s *SessionStats) record(summary RoundSummary) {
	s.Rounds++
	if summary.Won() {
		s.Won++
	} else {
		s.Lost++
	}
}

// Session plays rounds until the players decline a replay.
type Session struct {
	controller  *Controller
	prompter    Prompter
	out         io.Writer
	replayToken string
	logger      zerolog.Logger
}

// NewSession creates a session around a controller. Replay prompts use the
// controller's prompter and output.
func NewSession(controller *Controller, replayToken string, logger zerolog.Logger) *Session {
	if replayToken == "" {
		replayToken = hangman.DefaultReplayToken
	}

	return &Session{
		controller:  controller,
		prompter:    controller.prompter,
		out:         controller.out,
		replayToken: strings.ToLower(replayToken),
		logger:      logger.With().Str("component", "session").Logger(),
	}
}

// Run plays rounds until a replay prompt is answered with anything other than
// the replay token. Running out of input or cancelling ctx also ends the
// session; both count as a normal goodbye and return a nil error.
func (s *Session) Run(ctx context.Context) (SessionStats, error) {
	var stats SessionStats

	for {
		s.controller.println(s.controller.styles.Banner.Render(banner))
		s.controller.println("")

		summary, err := s.controller.PlayRound(ctx)
		if err != nil {
			if isGoodbye(err) {
				s.logger.Info().Err(err).Msg("Session interrupted")
				s.sayFarewell(stats)
				return stats, nil
			}
			return stats, err
		}
		stats.record(summary)

		s.controller.println("")
		answer, err := s.prompter.Prompt(ctx, fmt.Sprintf(replayPrompt, s.replayToken))
		if err != nil {
			if isGoodbye(err) {
				s.logger.Info().Err(err).Msg("Session interrupted")
				s.sayFarewell(stats)
				return stats, nil
			}
			return stats, err
		}

		if strings.ToLower(answer) != s.replayToken {
			break
		}
		s.logger.Debug().Int("rounds", stats.Rounds).Msg("Starting another round")
	}

	s.sayFarewell(stats)
	return stats, nil
}

func (s *Session) sayFarewell(stats SessionStats) {
	s.controller.println("")
	s.controller.println(s.controller.styles.Info.Render(farewell))

	s.logger.Info().
		Int("rounds", stats.Rounds).
		Int("won", stats.Won).
		Int("lost", stats.Lost).
		Msg("Session finished")
}

func isGoodbye(err error) bool {
	return errors.Is(err, ErrInputClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
