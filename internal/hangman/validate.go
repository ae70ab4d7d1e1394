package hangman

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateWord checks a candidate secret word and returns it uppercased.
// Surrounding whitespace is ignored. A word containing anything other than
// letters is rejected with ErrNonAlphabetic even when it is also too short.
func ValidateWord(raw string, minLength int) (string, error) {
	word := strings.TrimSpace(raw)

	if !isLetters(word) {
		return "", &ValidationError{Kind: ErrNonAlphabetic, Input: word}
	}
	if utf8.RuneCountInString(word) < minLength {
		return "", &ValidationError{Kind: ErrTooShort, Input: word, MinLength: minLength}
	}

	return strings.ToUpper(word), nil
}

// ValidateLetter checks a candidate guess against the letters already used
// this round and returns it uppercased.
func ValidateLetter(raw string, used []rune) (rune, error) {
	input := strings.ToUpper(strings.TrimSpace(raw))

	if utf8.RuneCountInString(input) != 1 {
		return 0, &ValidationError{Kind: ErrNotSingleCharacter, Input: input}
	}

	letter, _ := utf8.DecodeRuneInString(input)
	if !unicode.IsLetter(letter) {
		return 0, &ValidationError{Kind: ErrNonAlphabetic, Input: input}
	}
	if slices.Contains(used, letter) {
		return 0, &ValidationError{Kind: ErrAlreadyUsed, Input: input}
	}

	return letter, nil
}

// isLetters reports whether every rune of s is a letter. The empty string
// passes; length is checked separately.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
