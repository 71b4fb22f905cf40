package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/evaluate"
	"github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/words"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}

	switch s.state.Phase {
	case session.PhaseWordCard:
		return s.renderWordCard(width)
	case session.PhaseGame:
		return s.renderExercise(width)
	}
	return ""
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Preparing your session...")
}

func renderError(width int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Press any key to go back"))
	return b.String()
}

func renderQuitConfirm(width int) string {
	card := theme.Card.Render(
		theme.Title.Render("End this session?") + "\n\n" +
			theme.Body.Render("Progress so far is saved, the rest of the words are skipped.") + "\n\n" +
			theme.Hint.Render("Y to end, N to keep going"))
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// progressLine renders the "word 3 of 10, score 40" strip above exercises.
func (s *PracticeScreen) progressLine(width int) string {
	st := s.state
	done := len(st.Results)
	total := len(st.Words)

	bar := components.NewProgressBar("", float64(done)/float64(total), false, width/3)

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Word %d/%d", min(st.Index+1, total), total))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d   score %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			st.Progress.CorrectAnswers,
			st.Progress.Score,
		))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}

	return left + strings.Repeat(" ", pad) + right + "\n" +
		"  " + bar.View() + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))) + "\n"
}

// renderWordCard shows the full word: text, phonetics, translation,
// definition. The same card serves as intro for new words and as the
// post-answer review.
func (s *PracticeScreen) renderWordCard(width int) string {
	w := s.state.Current()
	if w == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.progressLine(width))
	b.WriteString("\n")

	var card strings.Builder
	card.WriteString(theme.Title.Render(w.Text) + "\n")
	if w.Phonetic != "" {
		card.WriteString(theme.Phonetic.Render("/"+w.Phonetic+"/") + "\n")
	}
	if w.PartOfSpeech != "" {
		card.WriteString(theme.Subtitle.Render(w.PartOfSpeech) + "\n")
	}
	card.WriteString("\n")
	card.WriteString(theme.Body.Render(w.Translation) + "\n")
	if w.Definition != "" {
		card.WriteString("\n" + theme.Hint.Render(w.Definition) + "\n")
	}
	if w.AudioURL != "" && s.cfg.SoundEnabled {
		hint := "Ctrl+R to hear it"
		if s.audioFailed {
			hint = "No audio: playback failed"
		}
		card.WriteString("\n" + theme.Hint.Render(hint))
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(card.String())))
	b.WriteString("\n\n")

	label := "Press Enter to practice this word"
	if s.state.Answered {
		label = "Press Enter to continue"
	}
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(label))

	return b.String()
}

func (s *PracticeScreen) renderExercise(width int) string {
	w := s.state.Current()
	if w == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.progressLine(width))
	b.WriteString("\n")

	switch s.exercise {
	case words.ChooseRightWord:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	case words.RememberTranslation:
		b.WriteString(theme.Title.Width(width).Render(w.Text) + "\n")
		if w.Phonetic != "" {
			b.WriteString(theme.Phonetic.Width(width).Align(lipgloss.Center).Render("/"+w.Phonetic+"/") + "\n")
		}
		b.WriteString("\n")
		if !s.recall.Revealed() {
			b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
				Render("Recall the translation, then press Enter to check"))
		} else {
			b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Bold(true).Render(w.Translation) + "\n\n")
			b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
				Render("Did you remember it?  Y / N"))
		}

	case words.MakeUpWord:
		prompt := w.Translation
		if prompt == "" {
			prompt = w.Definition
		}
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Bold(true).Render(prompt) + "\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.charpick.View()))

	case words.WriteByDefinition:
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Bold(true).Render(w.Definition) + "\n")
		if w.Translation != "" {
			b.WriteString(theme.Subtitle.Width(width).Render("("+w.Translation+")") + "\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))

	case words.WriteBySound:
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Bold(true).Render("♪ Listen and type the word") + "\n")
		if s.audioFailed {
			b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
				Render("No audio: playback failed, Ctrl+R to retry") + "\n")
		}
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("replays left: %d", s.writing.ReplaysLeft())) + "\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	return b.String()
}

// renderFeedback shows the scored result with a character diff on misses.
func (s *PracticeScreen) renderFeedback(width int) string {
	res := s.lastResult

	var b strings.Builder
	b.WriteString(s.progressLine(width))
	b.WriteString("\n\n")

	switch {
	case res.Skipped:
		b.WriteString(theme.Subtitle.Width(width).Bold(true).Render("Skipped"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).
			Render("The word was: " + theme.Correct.Render(res.CorrectWord)))
	case res.IsCorrect:
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
		if res.Points > 0 {
			b.WriteString("\n")
			b.WriteString(theme.Subtitle.Width(width).
				Render(fmt.Sprintf("+%d points", res.Points)))
		}
	default:
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite"))
		b.WriteString("\n\n")
		if res.UserInput != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				"you wrote   "+renderDiff(res)) + "\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			"correct     "+theme.Correct.Render(res.CorrectWord)))
		if res.Accuracy > 0 {
			b.WriteString("\n\n")
			b.WriteString(theme.Subtitle.Width(width).
				Render(fmt.Sprintf("%d%% of the letters matched", res.Accuracy)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Press any key to continue"))

	return b.String()
}

// renderDiff paints the learner's input with the mistaken positions
// highlighted. Mistake positions index the normalized input, so that is
// the form shown.
func renderDiff(res evaluate.Result) string {
	bad := make(map[int]bool, len(res.Mistakes))
	for _, m := range res.Mistakes {
		bad[m.Position] = true
	}

	var b strings.Builder
	for i, r := range []rune(evaluate.Normalize(res.UserInput)) {
		if bad[i] {
			b.WriteString(theme.Mistake.Render(string(r)))
		} else {
			b.WriteString(theme.Body.Render(string(r)))
		}
	}
	return b.String()
}
