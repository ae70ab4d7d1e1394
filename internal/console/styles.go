package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for game messages
type Styles struct {
	Banner  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Winner  lipgloss.Style
}

// NewRenderer creates a lipgloss renderer for out. Colour is detected from the
// terminal unless noColor forces plain text.
func NewRenderer(out io.Writer, noColor bool) *lipgloss.Renderer {
	if noColor {
		return lipgloss.NewRenderer(out, termenv.WithProfile(termenv.Ascii))
	}
	return lipgloss.NewRenderer(out)
}

// NewStyles creates the message styles bound to a renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Banner: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() *Styles {
	return NewStyles(NewRenderer(io.Discard, true))
}
