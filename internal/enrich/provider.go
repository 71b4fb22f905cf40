// Package enrich fills in missing word metadata (definition, phonetics,
// part of speech, an example sentence) using an OpenAI-compatible API.
// Enrichment is optional: the app works fully without a configured provider.
package enrich

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Enrichment is the metadata a provider generates for one word.
type Enrichment struct {
	Definition   string `json:"definition"`
	Phonetic     string `json:"phonetic"`
	PartOfSpeech string `json:"part_of_speech"`
	Example      string `json:"example"`
}

// Provider generates enrichment for a word given its text and translation.
type Provider interface {
	Enrich(ctx context.Context, text, translation string) (*Enrichment, error)
	ModelID() string
}

// Config holds provider configuration.
type Config struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenRouter or compatible APIs.
	Timeout time.Duration
	Retry   RetryConfig
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:   "gpt-4o-mini",
		Timeout: 30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables. The second
// return is false when no API key is configured at all.
func ConfigFromEnv() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("WORDIZ_OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("WORDIZ_OPENAI_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("WORDIZ_OPENAI_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	return cfg, cfg.APIKey != ""
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("enrichment provider unavailable: %v", e.Err)
	}
	return "enrichment provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider returned content that does not
// conform to the enrichment schema.
type ErrInvalidResponse struct {
	Content []byte
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid enrichment response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
