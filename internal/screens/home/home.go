// Package home is the entry screen: dictionary stats and the main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/audio"
	"github.com/abhisek/wordiz/internal/config"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/practice"
	"github.com/abhisek/wordiz/internal/screens/stats"
	"github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/words"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	totalWords int
	learned    int
	inProgress int
	difficult  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, player audio.Player, cfg config.Config) *HomeScreen {
	wordRepo := st.Words()

	var totalWords, learned, inProgress, difficult int
	if counts, err := wordRepo.StatusCounts(context.Background()); err == nil {
		learned = counts[words.StatusLearned]
		inProgress = counts[words.StatusInProgress] + counts[words.StatusNeedsReview]
		difficult = counts[words.StatusDifficult]
		for _, n := range counts {
			totalWords += n
		}
	}

	items := []components.MenuItem{
		{
			Label:    "START PRACTICE",
			Hint:     fmt.Sprintf("%d words, %s", cfg.WordsCount, practiceLabel(cfg.PracticeType)),
			Disabled: totalWords == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					eventRepo, err := st.Events()
					if err != nil {
						return nil
					}
					builder := session.NewBuilder(wordRepo)
					return router.PushScreenMsg{
						Screen: practice.New(builder, wordRepo, eventRepo, player, cfg),
					}
				}
			},
		},
		{
			Label: "STATISTICS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(st)}
				}
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		totalWords: totalWords,
		learned:    learned,
		inProgress: inProgress,
		difficult:  difficult,
	}
}

func practiceLabel(pt words.PracticeType) string {
	if pt.IsUnified() {
		return "mixed exercises"
	}
	return string(pt)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("W O R D I Z"))
	sections = append(sections, theme.Subtitle.Width(width).Render("vocabulary practice for the terminal"))

	if h.totalWords == 0 {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Your dictionary is empty. Run `wordiz import <file.json>` to add words."))
	} else {
		statsLine := fmt.Sprintf("%d words   %s %d learned   %s %d in progress   %s %d difficult",
			h.totalWords,
			lipgloss.NewStyle().Foreground(theme.Success).Render("●"), h.learned,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("●"), h.inProgress,
			lipgloss.NewStyle().Foreground(theme.Error).Render("●"), h.difficult,
		)
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(statsLine))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
