package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a lexicographer helping language learners. " +
	"Given a foreign word and its translation, produce a short learner-friendly " +
	"definition, an IPA transcription, the part of speech, and one example sentence. " +
	"Respond with JSON only."

// enrichmentSchema constrains the response shape at the API level.
var enrichmentSchema = json.RawMessage(`{
	"type": "object",
	"required": ["definition", "phonetic", "part_of_speech", "example"],
	"properties": {
		"definition": {"type": "string"},
		"phonetic": {"type": "string"},
		"part_of_speech": {"type": "string"},
		"example": {"type": "string"}
	},
	"additionalProperties": false
}`)

// OpenAIProvider implements Provider using the OpenAI SDK. It also supports
// OpenRouter and other OpenAI-compatible APIs via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg Config) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (p *OpenAIProvider) Enrich(ctx context.Context, text, translation string) (*Enrichment, error) {
	prompt := fmt.Sprintf("Word: %q\nTranslation: %q", text, translation)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: 300,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "word_enrichment",
				Schema: enrichmentSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in response")}
	}

	content := []byte(resp.Choices[0].Message.Content)
	var e Enrichment
	if err := json.Unmarshal(content, &e); err != nil {
		return nil, &ErrInvalidResponse{Content: content, Err: err}
	}
	if e.Definition == "" {
		return nil, &ErrInvalidResponse{Content: content, Err: fmt.Errorf("empty definition")}
	}
	return &e, nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
