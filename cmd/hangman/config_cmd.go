package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/hangman/internal/config"
	"github.com/lox/hangman/internal/fileutil"
)

type ConfigCmd struct {
	Config string `short:"c" default:"hangman.hcl" help:"HCL configuration file (missing file uses defaults)"`
	Output string `short:"o" help:"Write the configuration to this file instead of stdout"`
}

func (c *ConfigCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Output == "" {
		_, err := os.Stdout.Write(cfg.Encode())
		return err
	}

	return fileutil.WriteAtomic(c.Output, 0644, func(w io.Writer) error {
		_, err := w.Write(cfg.Encode())
		return err
	})
}
