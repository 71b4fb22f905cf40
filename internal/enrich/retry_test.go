package enrich

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func sample() *Enrichment {
	return &Enrichment{
		Definition:   "a domestic canine",
		Phonetic:     "hʊnt",
		PartOfSpeech: "noun",
		Example:      "Der Hund schläft.",
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Enrichment: sample()},
	)
	p := WithRetry(mock, fastRetry(3))

	e, err := p.Enrich(context.Background(), "hund", "dog")
	if err != nil {
		t.Fatalf("enrich: %v", err)
	}
	if e.Definition != "a domestic canine" {
		t.Errorf("definition = %q", e.Definition)
	}
	if len(mock.Calls) != 3 {
		t.Errorf("calls = %d, want 3", len(mock.Calls))
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetry(2))

	_, err := p.Enrich(context.Background(), "hund", "dog")
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("calls = %d, want 2", len(mock.Calls))
	}
}

func TestRetryInvalidResponseOnlyOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		MockResponse{Enrichment: sample()},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Enrich(context.Background(), "hund", "dog")
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("calls = %d, want 2 (one retry for invalid responses)", len(mock.Calls))
	}
}

func TestRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Enrichment: sample()},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Enrich(ctx, "hund", "dog")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("calls = %d, want 1", len(mock.Calls))
	}
}
