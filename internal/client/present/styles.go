package present

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// CRMarker отмечает перевод строки внутри фрагмента диффа
const CRMarker = "⏎"

var (
	redColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	greenColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	mutedColor = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Styles holds the lipgloss styles of the conflict dialog.
// The zero value renders plain text with word-diff style markers.
type Styles struct {
	Title   lipgloss.Style
	Path    lipgloss.Style
	Normal  lipgloss.Style
	Deleted lipgloss.Style
	Added   lipgloss.Style
	Marker  lipgloss.Style
	Choice  lipgloss.Style
	Colored bool
}

// DefaultStyles returns the colored styles used on a terminal.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Path:    lipgloss.NewStyle().Underline(true),
		Normal:  lipgloss.NewStyle(),
		Deleted: lipgloss.NewStyle().Foreground(redColor).Strikethrough(true),
		Added:   lipgloss.NewStyle().Foreground(greenColor),
		Marker:  lipgloss.NewStyle().Foreground(mutedColor),
		Choice:  lipgloss.NewStyle().Bold(true),
		Colored: true,
	}
}

// PlainStyles returns styles for pipes and log files.
func PlainStyles() Styles {
	return Styles{}
}

// StylesFor picks colored styles when f is a terminal.
func StylesFor(f *os.File) Styles {
	if f != nil && term.IsTerminal(int(f.Fd())) {
		return DefaultStyles()
	}
	return PlainStyles()
}

func (st Styles) render(style lipgloss.Style, s string) string {
	if !st.Colored || s == "" {
		return s
	}
	return style.Render(s)
}
