package hangman

// Phase is a step of the round state machine.
type Phase int

const (
	AwaitingWord Phase = iota
	AwaitingLetter
	Evaluating
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case AwaitingWord:
		return "awaiting_word"
	case AwaitingLetter:
		return "awaiting_letter"
	case Evaluating:
		return "evaluating"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (p Phase) Terminal() bool {
	return p == Won || p == Lost
}
