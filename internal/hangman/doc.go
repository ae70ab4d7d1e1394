// Package hangman implements the rules of a two-player Hangman round.
//
// The package is pure: it validates candidate words and letters, tracks the
// state of a single round and renders that state as text. It never reads
// from or writes to the console; the retry loops that keep prompting until
// input is valid live in the console package.
//
// # Basic Usage
//
//	secret, err := hangman.ValidateWord("perro", rules.MinWordLength)
//	if err != nil {
//	    // errors.Is(err, hangman.ErrTooShort), hangman.ErrNonAlphabetic
//	}
//	r := hangman.NewRound(secret, rules)
//	letter, err := hangman.ValidateLetter("p", r.Used())
//	res, err := r.Guess(letter)
//	if r.Phase().Terminal() {
//	    // r.Phase() == hangman.Won or hangman.Lost
//	}
//
// # State Machine
//
// A round moves through AwaitingWord, AwaitingLetter and Evaluating until it
// reaches Won or Lost. A Round value is created once the secret is known, so
// it starts in AwaitingLetter; AwaitingWord belongs to whoever is collecting
// the secret.
package hangman
