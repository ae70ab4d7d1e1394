package hangman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStatus(t *testing.T) {
	t.Run("no letters used", func(t *testing.T) {
		got := RenderStatus("_____", 5, nil)

		want := "\n" +
			"==================================\n" +
			"Intentos restantes: 5\n" +
			"Palabra: _ _ _ _ _\n" +
			"Letras usadas: ninguna\n" +
			"==================================\n" +
			"\n"
		assert.Equal(t, want, got)
	})

	t.Run("with letters used", func(t *testing.T) {
		got := RenderStatus("PERR_", 3, []rune{'P', 'X', 'E', 'Z', 'R'})

		assert.Contains(t, got, "Intentos restantes: 3\n")
		assert.Contains(t, got, "Palabra: P E R R _\n")
		assert.Contains(t, got, "Letras usadas: P, X, E, Z, R\n")
	})

	t.Run("multibyte characters are separated", func(t *testing.T) {
		got := RenderStatus("ÑA__Ú", 1, []rune{'Ñ'})
		assert.Contains(t, got, "Palabra: Ñ A _ _ Ú\n")
	})
}

func TestRoundStatus(t *testing.T) {
	r := NewRound("GATOS", DefaultRules())
	_, _ = r.Guess('A')
	_, _ = r.Guess('X')

	assert.Equal(t, RenderStatus("_A___", 4, []rune{'A', 'X'}), r.Status())
}

func TestFormatUsed(t *testing.T) {
	assert.Equal(t, "ninguna", FormatUsed(nil))
	assert.Equal(t, "ninguna", FormatUsed([]rune{}))
	assert.Equal(t, "A", FormatUsed([]rune{'A'}))
	assert.Equal(t, "A, B", FormatUsed([]rune{'A', 'B'}))
}
