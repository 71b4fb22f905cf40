package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
)

// SummaryScreen displays the end-of-session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Words: %d        Correct: %d        Accuracy: %d%%        Score: %d",
		sum.TotalWords, sum.Correct, sum.Accuracy, sum.Score)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", dividerWidth(width)))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Words")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, r := range sum.Results {
		var mark, note string
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case r.Skipped:
			mark = "–"
			note = "skipped"
			style = style.Foreground(theme.TextDim)
		case r.IsCorrect:
			mark = "✓"
			note = fmt.Sprintf("+%d", r.Points)
			style = style.Foreground(theme.Success)
		default:
			mark = "✗"
			if r.UserInput != "" {
				note = fmt.Sprintf("you wrote %q", r.UserInput)
			}
			style = style.Foreground(theme.Error)
		}

		line := fmt.Sprintf("  %s %-20s %s", mark, r.CorrectWord, note)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if len(sum.Achievements) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, a := range sum.Achievements {
			line := "  ★ " + a
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func dividerWidth(width int) int {
	w := width - 8
	if w > 60 {
		w = 60
	}
	if w < 1 {
		w = 1
	}
	return w
}
