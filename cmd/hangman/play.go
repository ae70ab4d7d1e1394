package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/config"
	"github.com/lox/hangman/internal/console"
	"github.com/lox/hangman/internal/roundid"
)

type PlayCmd struct {
	Config      string `short:"c" default:"hangman.hcl" help:"HCL configuration file (missing file uses defaults)"`
	MaxAttempts int    `help:"Wrong guesses allowed per round (overrides config)"`
	MinLength   int    `help:"Minimum length of the secret word (overrides config)"`
	ClearLines  int    `help:"Blank lines printed to hide the secret word (overrides config)"`
	MaskSecret  bool   `help:"Read the secret word without echo"`
	Plain       bool   `help:"Read plain lines from stdin instead of using line editing"`
	NoColor     bool   `help:"Disable coloured output"`
	Debug       bool   `help:"Enable debug logging"`
	LogFile     string `help:"Write structured logs to this file ('-' for stderr)"`
}

func (c *PlayCmd) Run() error {
	clog := newCLILogger(os.Stderr, c.Debug)

	cfg, err := c.resolveConfig(clog)
	if err != nil {
		return err
	}
	clog.Debug("Resolved configuration", "file", c.Config, "max_attempts", cfg.Game.MaxAttempts, "min_word_length", cfg.Game.MinWordLength)

	logger, logCloser, err := openLogger(cfg.UI.LogFile, cfg.UI.LogLevel, c.Debug)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer func() {
			if err := logCloser.Close(); err != nil {
				clog.Error("Failed to close log file", "error", err)
			}
		}()
	}

	prompter, err := newPrompter(cfg.UI.Plain)
	if err != nil {
		return err
	}
	warnUnmaskedSecret(clog, cfg, prompter)
	defer func() {
		if err := prompter.Close(); err != nil {
			clog.Error("Failed to close prompter", "error", err)
		}
	}()

	ctx, cancel := SetupSignalHandlerWithLogger(logger)
	defer cancel()

	controller := console.NewController(prompter, os.Stdout, console.Options{
		Rules:      cfg.Rules(),
		ClearLines: cfg.Game.ClearLines,
		MaskSecret: cfg.Game.MaskSecret,
		Logger:     logger,
		Clock:      quartz.NewReal(),
		IDs:        roundid.NewGenerator(nil),
		Styles:     console.NewStyles(console.NewRenderer(os.Stdout, cfg.UI.NoColor)),
	})

	stats, err := console.NewSession(controller, cfg.Game.ReplayToken, logger).Run(ctx)
	if err != nil {
		return fmt.Errorf("game aborted after %d rounds: %w", stats.Rounds, err)
	}
	clog.Debug("Session finished", "rounds", stats.Rounds, "won", stats.Won, "lost", stats.Lost)

	return nil
}

// newCLILogger creates the human-facing diagnostics logger. Only warnings
// and errors are shown unless debug is set.
func newCLILogger(w io.Writer, debug bool) *log.Logger {
	clog := log.NewWithOptions(w, log.Options{
		Prefix: "hangman",
		Level:  log.WarnLevel,
	})
	if debug {
		clog.SetLevel(log.DebugLevel)
	}
	return clog
}

// resolveConfig loads the config file and applies command line overrides.
func (c *PlayCmd) resolveConfig(clog *log.Logger) (*config.Config, error) {
	if c.Config != config.DefaultFile {
		if _, err := os.Stat(c.Config); errors.Is(err, fs.ErrNotExist) {
			clog.Warn("Config file not found, using defaults", "file", c.Config)
		}
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if c.MaxAttempts != 0 {
		cfg.Game.MaxAttempts = c.MaxAttempts
	}
	if c.MinLength != 0 {
		cfg.Game.MinWordLength = c.MinLength
	}
	if c.ClearLines != 0 {
		cfg.Game.ClearLines = c.ClearLines
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	cfg.Game.MaskSecret = cfg.Game.MaskSecret || c.MaskSecret
	cfg.UI.Plain = cfg.UI.Plain || c.Plain
	cfg.UI.NoColor = cfg.UI.NoColor || c.NoColor

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// warnUnmaskedSecret reports a mask_secret setting the prompter cannot honour.
func warnUnmaskedSecret(clog *log.Logger, cfg *config.Config, p console.Prompter) {
	if !cfg.Game.MaskSecret {
		return
	}
	if _, ok := p.(console.SecretPrompter); !ok {
		clog.Warn("Secret word will be echoed; masking needs an interactive terminal without --plain")
	}
}

// newPrompter uses line editing when stdin is a terminal.
func newPrompter(plain bool) (console.Prompter, error) {
	if plain || !readline.IsTerminal(int(os.Stdin.Fd())) {
		return console.NewLinePrompter(os.Stdin, os.Stdout), nil
	}
	return console.NewReadlinePrompter()
}
