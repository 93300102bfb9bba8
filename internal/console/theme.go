package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// Theme holds the styles used for terminal output. Styles come from a
// renderer bound to the output writer, so pipes get plain text.
type Theme struct {
	Prompt  lipgloss.Style
	Error   lipgloss.Style
	Exact   lipgloss.Style
	Present lipgloss.Style
	Absent  lipgloss.Style
}

// DefaultTheme returns the standard palette for output written to w:
// cyan prompt, green exact, yellow present, red absent and errors.
func DefaultTheme(w io.Writer) Theme {
	return NewTheme(lipgloss.NewRenderer(w))
}

// NewTheme builds the standard palette on r.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("6")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Exact:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Present: r.NewStyle().Foreground(lipgloss.Color("3")),
		Absent:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Mark returns the style for a letter with the given mark.
func (t Theme) Mark(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkExact:
		return t.Exact
	case game.MarkPresent:
		return t.Present
	default:
		return t.Absent
	}
}
