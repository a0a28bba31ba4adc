package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var styleErrBox = lipgloss.NewStyle().
	Width(80).
	MarginTop(1).
	Bold(true).
	Background(lipgloss.AdaptiveColor{Light: "#ffcdd2", Dark: "#512222"}).
	Foreground(lipgloss.AdaptiveColor{Light: "#b71c1c", Dark: "#fa8a8a"}).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderLeftForeground(lipgloss.Color("#f86262")).
	Padding(1, 2)

var styleHintBox = lipgloss.NewStyle().
	Width(80).
	Background(lipgloss.AdaptiveColor{Light: "#e9e9e9", Dark: "#2f2f2f"}).
	Padding(1, 2, 0).
	Margin(0, 1)

var styleErrText = lipgloss.NewStyle().Width(62)

var styleCause = lipgloss.NewStyle().
	Bold(false).
	Foreground(lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#d77a7a"})

// StyleGrass is used for headings
var StyleGrass = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#8bc34a"})

// StyleDim is used for secondary information like paths
var StyleDim = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"})

// ErrorBox renders the error text in a red box. Non empty hint lines
// are rendered in a grey box below.
func ErrorBox(errorText string, hints ...string) string {
	rendered := styleErrBox.Render(
		lipgloss.JoinHorizontal(lipgloss.Top, Emoji("❗ "), styleErrText.Render(errorText)),
	)

	lines := make([]string, 0, len(hints))
	for _, hint := range hints {
		if hint != "" {
			lines = append(lines, hint)
		}
	}
	if len(lines) != 0 {
		rendered = lipgloss.JoinVertical(
			lipgloss.Left,
			rendered,
			styleHintBox.Render(strings.Join(lines, "\n")+"\n"),
		)
	}

	return rendered
}
