package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/exercises"
	"github.com/abhisek/wordiz/internal/ui/theme"
)

// CharPick renders a letter-assembly exercise: the slots built so far on
// top, the remaining pool below with a movable cursor. Letters can be
// picked by cursor + enter or by typing them directly.
type CharPick struct {
	Assembly *exercises.Assembly
	Target   string
	Cursor   int
	LastMiss bool // the previous pick was rejected
}

// NewCharPick creates a CharPick around a prepared assembly machine.
func NewCharPick(target string, asm *exercises.Assembly) CharPick {
	return CharPick{Assembly: asm, Target: target}
}

// Init returns nil.
func (c CharPick) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and letter picks.
func (c CharPick) Update(msg tea.Msg) (CharPick, tea.Cmd) {
	if c.Assembly.Done() {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	pool := c.Assembly.Pool()
	if c.Cursor >= len(pool) {
		c.Cursor = len(pool) - 1
	}
	if c.Cursor < 0 {
		c.Cursor = 0
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(pool)-1 {
			c.Cursor++
		}
	case "enter", "space":
		if len(pool) > 0 {
			c.LastMiss = !c.Assembly.Pick(pool[c.Cursor])
		}
	default:
		runes := []rune(key)
		if len(runes) == 1 {
			c.LastMiss = !c.Assembly.Pick(runes[0])
		}
	}

	return c, nil
}

// View renders the assembled word and the letter pool.
func (c CharPick) View() string {
	var b strings.Builder

	// Assembled slots: filled letters then blanks up to the target length.
	selected := []rune(c.Assembly.Selected())
	targetLen := len([]rune(c.Target))
	var slots []string
	for i := 0; i < targetLen; i++ {
		if i < len(selected) {
			slots = append(slots, theme.Correct.Render(string(selected[i])))
		} else {
			slots = append(slots, theme.Hint.Render("_"))
		}
	}
	b.WriteString("  " + strings.Join(slots, " ") + "\n\n")

	pool := c.Assembly.Pool()
	tiles := make([]string, 0, len(pool))
	for i, r := range pool {
		if i == c.Cursor && !c.Assembly.Done() {
			tiles = append(tiles, theme.LetterTileSelected.Render(string(r)))
		} else {
			tiles = append(tiles, theme.LetterTile.Render(string(r)))
		}
	}
	b.WriteString("  " + strings.Join(tiles, " ") + "\n")

	if c.LastMiss && !c.Assembly.Done() {
		b.WriteString("\n" + theme.Incorrect.Render("  Not that letter") +
			theme.Hint.Render("  tries left: ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(strconv.Itoa(c.Assembly.AttemptsLeft())) + "\n")
	}

	return b.String()
}
