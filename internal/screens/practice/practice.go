// Package practice implements the practice session screen: the exercise
// loop, the word cards between exercises, and the hand-off to the summary.
package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/audio"
	"github.com/abhisek/wordiz/internal/config"
	"github.com/abhisek/wordiz/internal/evaluate"
	"github.com/abhisek/wordiz/internal/exercises"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/summary"
	"github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/words"
)

// PracticeScreen implements screen.Screen for a running practice session.
type PracticeScreen struct {
	builder   *session.Builder
	wordRepo  *store.WordRepo
	eventRepo *store.EventRepo
	player    audio.Player
	cfg       config.Config

	state *session.State

	// Per-word exercise machines. Exactly one is active at a time,
	// matching the current word's exercise type.
	exercise words.ExerciseType
	choice   *exercises.Choice
	assembly *exercises.Assembly
	recall   *exercises.Recall
	writing  *exercises.Writing

	// View-side components for the active machine.
	mc       components.MultiChoice
	charpick components.CharPick
	input    components.TextInput

	showingFeedback bool
	lastResult      evaluate.Result
	quitConfirm     bool
	errMsg          string
	audioFailed     bool

	wordStart time.Time

	// advanceGen invalidates scheduled feedback timers: a timer fires with
	// the generation it was armed with, and a mismatch means the learner
	// already dismissed the feedback by key.
	advanceGen int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscHandler = (*PracticeScreen)(nil)

// New creates a practice screen with injected dependencies.
func New(builder *session.Builder, wordRepo *store.WordRepo, eventRepo *store.EventRepo, player audio.Player, cfg config.Config) *PracticeScreen {
	if player == nil {
		player = audio.Silent{}
	}
	return &PracticeScreen{
		builder:   builder,
		wordRepo:  wordRepo,
		eventRepo: eventRepo,
		player:    player,
		cfg:       cfg,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.initSession()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.state != nil && s.state.Phase == session.PhaseWordCard {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+R", Description: "Hear it"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+K", Description: "Skip"},
	}
	if s.exercise == words.WriteBySound {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Replay"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

// HandleEsc intercepts Esc so an in-flight session shows the quit
// confirmation instead of being popped outright.
func (s *PracticeScreen) HandleEsc() tea.Cmd {
	if s.state == nil || s.errMsg != "" {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.quitConfirm = true
	return nil
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case feedbackDoneMsg:
		if msg.Gen != s.advanceGen {
			return s, nil
		}
		return s.dismissFeedback()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case persistMsg:
		if msg.Err != nil && s.errMsg == "" {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case audioDoneMsg:
		// Playback failures are not fatal, but the learner must see
		// that nothing played.
		s.audioFailed = msg.Err != nil
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to the text input while a typed exercise is active.
	if s.activeTyping() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initSession builds the session off the UI loop and logs the start event.
func (s *PracticeScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		st, err := s.builder.Build(ctx, session.Request{
			WordsCount:   s.cfg.WordsCount,
			Difficulty:   s.cfg.Difficulty,
			PracticeType: s.cfg.PracticeType,
			Enabled:      s.cfg.EnabledExercises,
			MaxReplays:   s.cfg.MaxReplays,
		})
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:    st.SessionID,
			Action:       store.ActionSessionStart,
			PracticeType: string(st.PracticeType),
			WordsCount:   len(st.Words),
		})

		return sessionInitMsg{State: st}
	}
}

func (s *PracticeScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	return s, s.setupWord()
}

// setupWord arms the exercise machine for the current word and kicks off
// autoplay when the exercise is sound-driven.
func (s *PracticeScreen) setupWord() tea.Cmd {
	w := s.state.Current()
	if w == nil {
		return func() tea.Msg { return sessionEndMsg{} }
	}

	et, err := session.ExerciseFor(w, s.state.PracticeType)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.exercise = et
	s.wordStart = time.Now()
	s.audioFailed = false
	s.choice, s.assembly, s.recall, s.writing = nil, nil, nil, nil

	var cmds []tea.Cmd
	switch et {
	case words.ChooseRightWord:
		s.choice = exercises.NewChoice(w.Options, w.CorrectIndex)
		s.mc = components.NewMultiChoice(w.Text, w.Options, w.CorrectIndex)
	case words.RememberTranslation:
		s.recall = exercises.NewRecall()
	case words.MakeUpWord:
		s.assembly = exercises.NewAssembly(w.Text, w.CharPool, w.MaxAttempts)
		s.charpick = components.NewCharPick(w.Text, s.assembly)
	case words.WriteByDefinition:
		s.writing = exercises.NewWriting(false, 0)
		s.input = components.NewTextInput("Type the word...", 40)
		cmds = append(cmds, s.input.Init())
	case words.WriteBySound:
		maxReplays := s.cfg.MaxReplays
		if maxReplays <= 0 {
			maxReplays = exercises.DefaultMaxReplays
		}
		s.writing = exercises.NewWriting(true, maxReplays)
		s.input = components.NewTextInput("Type what you hear...", 40)
		cmds = append(cmds, s.input.Init())
		if s.cfg.SoundEnabled && w.AudioURL != "" {
			cmds = append(cmds, s.playAudio(w.AudioURL))
		}
	}

	if s.state.Phase == session.PhaseGame && s.cfg.AutoPlayAudio && s.cfg.SoundEnabled &&
		w.AudioURL != "" && et != words.WriteBySound {
		cmds = append(cmds, s.playAudio(w.AudioURL))
	}

	return tea.Batch(cmds...)
}

func (s *PracticeScreen) activeTyping() bool {
	return s.state != nil && s.state.Phase == session.PhaseGame &&
		!s.showingFeedback && !s.quitConfirm && s.exercise.IsTyped()
}

func (s *PracticeScreen) playAudio(src string) tea.Cmd {
	player := s.player
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return audioDoneMsg{Err: player.Play(ctx, src)}
	}
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		// Any key dismisses early; bump the generation so the armed
		// timer becomes a no-op.
		s.advanceGen++
		return s.dismissFeedback()
	}

	switch s.state.Phase {
	case session.PhaseWordCard:
		return s.handleCardKey(key)
	case session.PhaseGame:
		return s.handleGameKey(msg, key)
	}
	return s, nil
}

func (s *PracticeScreen) handleCardKey(key string) (screen.Screen, tea.Cmd) {
	w := s.state.Current()
	switch key {
	case "enter", "space":
		phase := s.state.AdvanceFromCard()
		switch phase {
		case session.PhaseSummary:
			return s, func() tea.Msg { return sessionEndMsg{} }
		case session.PhaseGame:
			// Either the intro card leading into this word's exercise,
			// or the cursor moved to a fresh word.
			return s, s.setupWord()
		case session.PhaseWordCard:
			// Next word starts on its own intro card.
			return s, s.setupWord()
		}
	case "ctrl+r":
		if w != nil && s.cfg.SoundEnabled && w.AudioURL != "" {
			return s, s.playAudio(w.AudioURL)
		}
	}
	return s, nil
}

func (s *PracticeScreen) handleGameKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	w := s.state.Current()
	if w == nil {
		return s, nil
	}

	// Skip works in every exercise and costs points.
	if key == "ctrl+k" {
		return s.finishWord(evaluate.Skipped(w.Text))
	}

	switch s.exercise {
	case words.ChooseRightWord:
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			s.choice.Select(s.mc.ChosenIndex)
			out := s.choice.Outcome()
			return s.finishWord(evaluate.FromOutcome(out.UserInput, w.Translation, out.Correct))
		}

	case words.RememberTranslation:
		if !s.recall.Revealed() {
			if key == "enter" || key == "space" {
				s.recall.Reveal()
			}
			return s, nil
		}
		switch key {
		case "y", "Y":
			s.recall.Report(true)
		case "n", "N":
			s.recall.Report(false)
		}
		if s.recall.Done() {
			out := s.recall.Outcome()
			return s.finishWord(evaluate.SelfReport(w.Text, out.Correct))
		}

	case words.MakeUpWord:
		s.charpick, _ = s.charpick.Update(msg)
		if s.assembly.Done() {
			out := s.assembly.Outcome()
			return s.finishWord(evaluate.FromOutcome(out.UserInput, w.Text, out.Correct))
		}

	case words.WriteByDefinition, words.WriteBySound:
		switch key {
		case "ctrl+r":
			if s.exercise == words.WriteBySound && s.cfg.SoundEnabled &&
				w.AudioURL != "" && s.writing.Replay() {
				return s, s.playAudio(w.AudioURL)
			}
			return s, nil
		case "enter":
			if s.input.Value() == "" {
				return s, nil
			}
			s.writing.Submit(s.input.Value())
			res := evaluate.Evaluate(s.writing.Input(), w.Text)
			s.input.Submit(res.IsCorrect)
			return s.finishWord(res)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// finishWord scores the result, persists it, and arms the feedback timer.
func (s *PracticeScreen) finishWord(res evaluate.Result) (screen.Screen, tea.Cmd) {
	w := s.state.Current()
	res.ResponseTime = time.Since(s.wordStart)

	scored := s.state.HandleAnswer(res)
	s.lastResult = scored
	s.showingFeedback = true
	s.advanceGen++
	gen := s.advanceGen

	delay := session.FeedbackDelay(scored.IsCorrect)
	timer := tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Gen: gen}
	})

	return s, tea.Batch(timer, s.persistResult(w, scored))
}

// persistResult writes the result event. The word's durable counters are
// left alone here; they are flushed in one pass when the session ends.
func (s *PracticeScreen) persistResult(w *words.Word, res evaluate.Result) tea.Cmd {
	sessionID := s.state.SessionID
	exercise := s.exercise
	wordID := w.ID
	return func() tea.Msg {
		ctx := context.Background()
		if err := s.eventRepo.AppendResultEvent(ctx, store.ResultEventData{
			SessionID:    sessionID,
			WordID:       wordID,
			ExerciseType: string(exercise),
			UserInput:    res.UserInput,
			CorrectWord:  res.CorrectWord,
			Correct:      res.IsCorrect,
			Skipped:      res.Skipped,
			Accuracy:     res.Accuracy,
			Points:       res.Points,
			ResponseTime: res.ResponseTime,
		}); err != nil {
			return persistMsg{Err: err}
		}
		return persistMsg{}
	}
}

// dismissFeedback moves from the answer feedback onto the review card.
func (s *PracticeScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	if !s.showingFeedback {
		return s, nil
	}
	s.showingFeedback = false
	s.state.EnterCard()
	return s, nil
}

// handleSessionEnd runs the completion side effects exactly once and swaps
// in the summary screen.
func (s *PracticeScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	sum := session.BuildSummary(s.state, time.Now())

	if s.state.CompleteOnce() {
		action := store.ActionSessionComplete
		if !s.state.Done() {
			action = store.ActionSessionAbort
		}
		ctx := context.Background()

		// Flush learning progress for every answered word. Results line
		// up with Words in presentation order, at most one per word.
		for i := range s.state.Results {
			_ = s.wordRepo.RecordOutcome(ctx, &s.state.Words[i], s.state.Results[i].IsCorrect)
		}

		_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:        s.state.SessionID,
			Action:           action,
			PracticeType:     string(s.state.PracticeType),
			WordsCount:       sum.TotalWords,
			CorrectAnswers:   sum.Correct,
			IncorrectAnswers: sum.Incorrect,
			Score:            sum.Score,
			Accuracy:         sum.Accuracy,
			DurationSecs:     int(sum.Duration.Seconds()),
		})
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
