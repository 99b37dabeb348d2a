// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm implements the text-generation collaborator on top of
// langchaingo, with Ollama as the default backend and any
// OpenAI-compatible endpoint as an alternative.
package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/pdiddy/researchmind/pkg/types"
)

// Client wraps a langchaingo model behind the engine's Generator
// contract. Calls are synchronous; latency bounds come from the caller's
// context.
type Client struct {
	model       llms.Model
	temperature float64
	maxTokens   int
}

// New builds a client for the configured provider, applying the same
// defaults the configuration layer documents.
func New(cfg types.LLMConfig) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = "llama3.2"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Temperature <= 0 || cfg.Temperature > 1 {
		cfg.Temperature = 0.7
	}

	var (
		model llms.Model
		err   error
	)
	switch cfg.Provider {
	case types.ProviderOllama, "":
		model, err = ollama.New(
			ollama.WithModel(cfg.Model),
			ollama.WithServerURL(cfg.BaseURL),
		)
	case types.ProviderOpenAI:
		opts := []openai.Option{
			openai.WithModel(cfg.Model),
			openai.WithToken(cfg.APIKey),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		model, err = openai.New(opts...)
	default:
		return nil, fmt.Errorf("unknown llm provider %q: use ollama or openai", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s backend: %w", providerName(cfg.Provider), err)
	}

	return &Client{
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Generate sends the role-tagged messages to the model and returns the
// generated text. An empty response is reported as an error so the
// orchestrator treats it like any other generation failure.
func (c *Client) Generate(ctx context.Context, msgs []types.Message) (string, error) {
	opts := []llms.CallOption{llms.WithTemperature(c.temperature)}
	if c.maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(c.maxTokens))
	}

	resp, err := c.model.GenerateContent(ctx, Content(msgs), opts...)
	if err != nil {
		return "", fmt.Errorf("generating response: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Choices[0].Content, nil
}

// Content converts engine messages into langchaingo message contents,
// preserving order and role tags.
func Content(msgs []types.Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, llms.TextParts(chatMessageType(m.Role), m.Content))
	}
	return out
}

func chatMessageType(r types.Role) schema.ChatMessageType {
	switch r {
	case types.RoleSystem:
		return schema.ChatMessageTypeSystem
	case types.RoleAssistant:
		return schema.ChatMessageTypeAI
	default:
		return schema.ChatMessageTypeHuman
	}
}

func providerName(p types.LLMProvider) string {
	if p == "" {
		return string(types.ProviderOllama)
	}
	return string(p)
}
