// Package stats renders lifetime practice statistics from the event log.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/words"
)

// StatsScreen shows dictionary progress and lifetime session aggregates.
type StatsScreen struct {
	stats   store.Stats
	counts  map[words.LearningStatus]int
	total   int
	loadErr error
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen, loading its data up front.
func New(st *store.Store) *StatsScreen {
	s := &StatsScreen{}
	ctx := context.Background()

	counts, err := st.Words().StatusCounts(ctx)
	if err != nil {
		s.loadErr = err
		return s
	}
	s.counts = counts
	for _, n := range counts {
		s.total += n
	}

	events, err := st.Events()
	if err != nil {
		s.loadErr = err
		return s
	}
	s.stats, err = events.Stats(ctx)
	if err != nil {
		s.loadErr = err
	}
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.loadErr != nil {
		return theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render("\n\nCould not load statistics: " + s.loadErr.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Statistics"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Dictionary")))
	b.WriteString("\n\n")

	order := []struct {
		status words.LearningStatus
		label  string
	}{
		{words.StatusLearned, "Learned"},
		{words.StatusInProgress, "In progress"},
		{words.StatusNeedsReview, "Needs review"},
		{words.StatusDifficult, "Difficult"},
		{words.StatusNotStarted, "Not started"},
	}

	barWidth := width / 2
	if barWidth < 20 {
		barWidth = 20
	}
	for _, row := range order {
		n := s.counts[row.status]
		pct := 0.0
		if s.total > 0 {
			pct = float64(n) / float64(s.total)
		}
		bar := components.NewProgressBar(fmt.Sprintf("%-13s %3d", row.label, n), pct, false, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Sessions")))
	b.WriteString("\n\n")

	line := fmt.Sprintf("Completed: %d        Answers: %d        Accuracy: %d%%        Total score: %d",
		s.stats.SessionsCompleted, s.stats.TotalAnswers, s.stats.Accuracy(), s.stats.TotalScore)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(line))

	return b.String()
}
