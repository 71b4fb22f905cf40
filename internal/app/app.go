// Package app wires the stores, audio, and screens into the root Bubble
// Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/audio"
	"github.com/abhisek/wordiz/internal/config"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/home"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	st     *store.Store
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(st *store.Store, cfg config.Config) AppModel {
	var player audio.Player = audio.Silent{}
	if cfg.SoundEnabled {
		if p, err := audio.Detect(); err == nil {
			player = p
		}
	}

	homeScreen := home.New(st, player, cfg)
	return AppModel{
		router: router.New(homeScreen),
		st:     st,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen may intercept Esc (e.g. quit confirmation).
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				return m, h.HandleEsc()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	dictWords, totalScore := m.headerStats()
	header := layout.RenderHeader(title, dictWords, totalScore, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok && hp.KeyHints() != nil {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStats reads the header numbers fresh each frame; both queries are
// single-row lookups against a local SQLite file.
func (m AppModel) headerStats() (int, int) {
	ctx := context.Background()
	dictWords, _ := m.st.Words().Count(ctx)

	events, err := m.st.Events()
	if err != nil {
		return dictWords, 0
	}
	stats, err := events.Stats(ctx)
	if err != nil {
		return dictWords, 0
	}
	return dictWords, stats.TotalScore
}

// Run starts the Bubble Tea program.
func Run(st *store.Store, cfg config.Config) error {
	p := tea.NewProgram(newAppModel(st, cfg))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
