// Package config loads practice settings from the environment. A .env file
// in the working directory is honored when present; real environment
// variables win over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/wordiz/internal/words"
)

// Config holds all runtime settings for a practice run.
type Config struct {
	// WordsCount is the number of words per session. Default: 10.
	WordsCount int

	// Difficulty scales scoring, 1-5. Default: 1.
	Difficulty int

	// PracticeType selects the session mode. Default: unified.
	PracticeType words.PracticeType

	// EnabledExercises restricts the variants unified practice may
	// assign. Empty means all of them.
	EnabledExercises []words.ExerciseType

	// SoundEnabled gates all audio playback.
	SoundEnabled bool

	// AutoPlayAudio plays a word's audio when its exercise appears.
	AutoPlayAudio bool

	// MaxReplays is the replay budget for sound-writing exercises.
	MaxReplays int

	// DBPath overrides the default database location.
	DBPath string
}

// Default returns a Config with the stock settings.
func Default() Config {
	return Config{
		WordsCount:   10,
		Difficulty:   1,
		PracticeType: words.UnifiedPractice,
		SoundEnabled: true,
		MaxReplays:   3,
	}
}

// Load reads .env (if any) and builds a Config from WORDIZ_* environment
// variables, falling back to defaults for unset or unparseable values.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()

	if n, ok := envInt("WORDIZ_WORDS_COUNT"); ok && n > 0 {
		cfg.WordsCount = n
	}
	if n, ok := envInt("WORDIZ_DIFFICULTY"); ok && n >= 1 && n <= 5 {
		cfg.Difficulty = n
	}
	if v := os.Getenv("WORDIZ_PRACTICE_TYPE"); v != "" {
		if pt, err := words.ParsePracticeType(v); err == nil {
			cfg.PracticeType = pt
		}
	}
	if v := os.Getenv("WORDIZ_EXERCISES"); v != "" {
		cfg.EnabledExercises = parseExercises(v)
	}
	if b, ok := envBool("WORDIZ_SOUND"); ok {
		cfg.SoundEnabled = b
	}
	if b, ok := envBool("WORDIZ_AUTOPLAY"); ok {
		cfg.AutoPlayAudio = b
	}
	if n, ok := envInt("WORDIZ_MAX_REPLAYS"); ok && n > 0 {
		cfg.MaxReplays = n
	}
	if v := os.Getenv("WORDIZ_DB"); v != "" {
		cfg.DBPath = v
	}

	return cfg
}

// Validate checks the config for values the session builder would reject.
func (c Config) Validate() error {
	if c.WordsCount <= 0 {
		return fmt.Errorf("words count must be positive, got %d", c.WordsCount)
	}
	if c.Difficulty < 1 || c.Difficulty > 5 {
		return fmt.Errorf("difficulty must be 1-5, got %d", c.Difficulty)
	}
	if _, err := words.ParsePracticeType(string(c.PracticeType)); err != nil {
		return err
	}
	for _, et := range c.EnabledExercises {
		if !words.ValidExercise(et) {
			return fmt.Errorf("unknown exercise type: %s", et)
		}
	}
	return nil
}

// parseExercises splits a comma-separated exercise list, dropping entries
// that are not known exercise types.
func parseExercises(v string) []words.ExerciseType {
	var out []words.ExerciseType
	for _, part := range strings.Split(v, ",") {
		et := words.ExerciseType(strings.TrimSpace(part))
		if words.ValidExercise(et) {
			out = append(out, et)
		}
	}
	return out
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
