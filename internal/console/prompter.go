package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"
)

// ErrInputClosed is returned by a Prompter once its input is exhausted or
// the player interrupts it.
var ErrInputClosed = errors.New("input closed")

// Prompter asks a question and returns one line of input without the
// trailing newline.
type Prompter interface {
	Prompt(ctx context.Context, prompt string) (string, error)
	Close() error
}

// SecretPrompter is implemented by prompters that can read a line without echoing it.
type SecretPrompter interface {
	PromptSecret(ctx context.Context, prompt string) (string, error)
}

// LinePrompter reads newline-terminated input from any reader. It is used for
// piped input and in tests.
//
// Reads happen on a background goroutine so a cancelled context unblocks
// Prompt. A line that arrives after cancellation is kept for the next Prompt.
type LinePrompter struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLinePrompter creates a prompter writing prompts to out and reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt writes prompt and reads one line.
func (p *LinePrompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	if p.pending == nil {
		p.pending = make(chan lineResult, 1)
		go func(ch chan<- lineResult) {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}(p.pending)
	}

	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-p.pending:
		p.pending = nil
	}

	line, err := res.line, res.err
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op; the underlying reader belongs to the caller.
func (p *LinePrompter) Close() error {
	return nil
}

// ReadlinePrompter reads from the terminal with line editing. Answers are
// never saved to history so the secret word cannot be recalled with the
// arrow keys. Cancelling the context of a pending prompt closes the
// terminal, after which every prompt fails.
type ReadlinePrompter struct {
	rl        *readline.Instance
	closeOnce sync.Once
	closeErr  error
}

// NewReadlinePrompter creates a prompter attached to the process terminal.
func NewReadlinePrompter() (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise readline: %w", err)
	}

	return &ReadlinePrompter{rl: rl}, nil
}

// Prompt shows prompt and reads one edited line.
func (p *ReadlinePrompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stop := context.AfterFunc(ctx, func() { _ = p.Close() })
	defer stop()

	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	return line, readlineResult(ctx, err)
}

// PromptSecret shows prompt and reads one line without echo.
func (p *ReadlinePrompter) PromptSecret(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stop := context.AfterFunc(ctx, func() { _ = p.Close() })
	defer stop()

	line, err := p.rl.ReadPassword(prompt)
	return string(line), readlineResult(ctx, err)
}

// Close restores the terminal. It is safe to call more than once.
func (p *ReadlinePrompter) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.rl.Close()
	})
	return p.closeErr
}

// readlineResult reports cancellation ahead of the error caused by closing
// the terminal underneath a pending read.
func readlineResult(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return translateReadlineError(err)
}

func translateReadlineError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return ErrInputClosed
	default:
		return fmt.Errorf("failed to read input: %w", err)
	}
}
