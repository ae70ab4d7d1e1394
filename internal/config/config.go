package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/hangman/internal/hangman"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "hangman.hcl"

// Config represents the complete game configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
}

// GameSettings contains the rules of a round and the session prompts
type GameSettings struct {
	MaxAttempts   int    `hcl:"max_attempts,optional"`
	MinWordLength int    `hcl:"min_word_length,optional"`
	Placeholder   string `hcl:"placeholder,optional"`
	ClearLines    int    `hcl:"clear_lines,optional"`
	ReplayToken   string `hcl:"replay_token,optional"`
	MaskSecret    bool   `hcl:"mask_secret,optional"`
}

// UISettings contains console and logging settings
type UISettings struct {
	NoColor  bool   `hcl:"no_color,optional"`
	Plain    bool   `hcl:"plain,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// fileConfig mirrors Config with optional blocks so either may be omitted.
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			MaxAttempts:   hangman.DefaultMaxAttempts,
			MinWordLength: hangman.DefaultMinWordLength,
			Placeholder:   string(hangman.DefaultPlaceholder),
			ClearLines:    hangman.DefaultClearLines,
			ReplayToken:   hangman.DefaultReplayToken,
		},
		UI: UISettings{
			LogLevel: "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(src, filename)
}

// Parse loads configuration from HCL source held in memory.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var fc fileConfig
	if diags := gohcl.DecodeBody(body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var config Config
	if fc.Game != nil {
		config.Game = *fc.Game
	}
	if fc.UI != nil {
		config.UI = *fc.UI
	}

	// Apply defaults for missing values
	defaults := Default()

	if config.Game.MaxAttempts == 0 {
		config.Game.MaxAttempts = defaults.Game.MaxAttempts
	}
	if config.Game.MinWordLength == 0 {
		config.Game.MinWordLength = defaults.Game.MinWordLength
	}
	if config.Game.Placeholder == "" {
		config.Game.Placeholder = defaults.Game.Placeholder
	}
	if config.Game.ClearLines == 0 {
		config.Game.ClearLines = defaults.Game.ClearLines
	}
	if config.Game.ReplayToken == "" {
		config.Game.ReplayToken = defaults.Game.ReplayToken
	}
	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Game.Placeholder) != 1 {
		return fmt.Errorf("placeholder must be a single character, got %q", c.Game.Placeholder)
	}
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	if c.Game.ClearLines < 0 {
		return fmt.Errorf("clear lines cannot be negative")
	}
	if c.Game.ReplayToken == "" {
		return fmt.Errorf("replay token is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// Rules returns the round rules described by the game settings.
func (c *Config) Rules() hangman.Rules {
	placeholder, _ := utf8.DecodeRuneInString(c.Game.Placeholder)
	if placeholder == utf8.RuneError {
		placeholder = 0
	}

	return hangman.Rules{
		MaxAttempts:   c.Game.MaxAttempts,
		MinWordLength: c.Game.MinWordLength,
		Placeholder:   placeholder,
	}
}

// Encode renders the configuration as HCL.
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return f.Bytes()
}
