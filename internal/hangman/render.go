package hangman

import (
	"fmt"
	"strings"
)

// StatusSeparator frames the status block.
const StatusSeparator = "=================================="

// NoLettersUsed is shown in place of the used-letter list before the first guess.
const NoLettersUsed = "ninguna"

// RenderStatus formats the state of a round for the console:
//
//	==================================
//	Intentos restantes: 5
//	Palabra: P E R R _
//	Letras usadas: P, E, R
//	==================================
//
// The block is preceded and followed by a blank line.
func RenderStatus(masked string, attemptsRemaining int, used []rune) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StatusSeparator + "\n")
	fmt.Fprintf(&b, "Intentos restantes: %d\n", attemptsRemaining)
	fmt.Fprintf(&b, "Palabra: %s\n", spaced(masked))
	fmt.Fprintf(&b, "Letras usadas: %s\n", FormatUsed(used))
	b.WriteString(StatusSeparator + "\n")
	b.WriteString("\n")

	return b.String()
}

// FormatUsed joins used letters with commas, or returns NoLettersUsed.
func FormatUsed(used []rune) string {
	if len(used) == 0 {
		return NoLettersUsed
	}

	letters := make([]string, len(used))
	for i, l := range used {
		letters[i] = string(l)
	}
	return strings.Join(letters, ", ")
}

func spaced(s string) string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return strings.Join(chars, " ")
}
