package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from a fixed list and records what was asked.
type scriptedPrompter struct {
	answers       []string
	prompts       []string
	secretPrompts int
	onPrompt      func()
}

func newScriptedPrompter(answers ...string) *scriptedPrompter {
	return &scriptedPrompter{answers: answers}
}

func (p *scriptedPrompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.prompts = append(p.prompts, prompt)
	if p.onPrompt != nil {
		p.onPrompt()
	}
	if len(p.answers) == 0 {
		return "", ErrInputClosed
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) PromptSecret(ctx context.Context, prompt string) (string, error) {
	p.secretPrompts++
	return p.Prompt(ctx, prompt)
}

func (p *scriptedPrompter) Close() error { return nil }

func TestLinePrompter(t *testing.T) {
	ctx := context.Background()

	t.Run("reads lines and writes prompts", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("perro\r\n  a \nlast"), &out)

		got, err := p.Prompt(ctx, "uno: ")
		require.NoError(t, err)
		assert.Equal(t, "perro", got)

		got, err = p.Prompt(ctx, "dos: ")
		require.NoError(t, err)
		assert.Equal(t, "  a ", got, "answers are not trimmed")

		got, err = p.Prompt(ctx, "tres: ")
		require.NoError(t, err)
		assert.Equal(t, "last", got, "final line without newline is returned")

		_, err = p.Prompt(ctx, "cuatro: ")
		assert.ErrorIs(t, err, ErrInputClosed)

		assert.Equal(t, "uno: dos: tres: cuatro: ", out.String())
		assert.NoError(t, p.Close())
	})

	t.Run("empty line is an answer", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("\n"), io.Discard)

		got, err := p.Prompt(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("perro\n"), &out)

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := p.Prompt(cctx, "uno: ")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out.String())
	})

	t.Run("cancelled while waiting for input", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()

		cctx, cancel := context.WithCancel(ctx)
		p := NewLinePrompter(pr, cancelOnWrite{cancel})

		_, err := p.Prompt(cctx, "uno: ")
		assert.ErrorIs(t, err, context.Canceled)

		go func() { _, _ = io.WriteString(pw, "perro\n") }()

		got, err := p.Prompt(ctx, "dos: ")
		require.NoError(t, err)
		assert.Equal(t, "perro", got, "a line typed after cancellation is kept for the next prompt")
	})

	t.Run("read failure", func(t *testing.T) {
		boom := errors.New("boom")
		p := NewLinePrompter(io.MultiReader(strings.NewReader("par"), errReader{boom}), io.Discard)

		_, err := p.Prompt(ctx, "")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrInputClosed)
	})
}

func TestTranslateReadlineError(t *testing.T) {
	assert.NoError(t, translateReadlineError(nil))
	assert.ErrorIs(t, translateReadlineError(readline.ErrInterrupt), ErrInputClosed)
	assert.ErrorIs(t, translateReadlineError(io.EOF), ErrInputClosed)

	boom := errors.New("boom")
	err := translateReadlineError(boom)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInputClosed)
}

func TestReadlineResult(t *testing.T) {
	cctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, readlineResult(cctx, io.EOF), context.Canceled)
	assert.ErrorIs(t, readlineResult(context.Background(), io.EOF), ErrInputClosed)
	assert.NoError(t, readlineResult(context.Background(), nil))
}

type errReader struct{ err error }

// cancelOnWrite cancels a context once a prompt has been written, leaving
// the prompter waiting for input.
type cancelOnWrite struct{ cancel context.CancelFunc }

func (w cancelOnWrite) Write(b []byte) (int, error) {
	w.cancel()
	return len(b), nil
}

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
