package adapter

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
)

// genAITextGenerator implements [TextGenerator] with the Gemini API.
type genAITextGenerator struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

// NewGenAITextGenerator creates a Gemini-backed [TextGenerator]. It returns
// [ErrNotConfigured] when no API key is set.
func NewGenAITextGenerator(ctx context.Context, cfg config.AI, logger *logger.Logger) (TextGenerator, error) {
	return newGenAITextGenerator(ctx, cfg, nil, logger)
}

func newGenAITextGenerator(ctx context.Context, cfg config.AI, httpOptions *genai.HTTPOptions, logger *logger.Logger) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if httpOptions != nil {
		clientCfg.HTTPOptions = *httpOptions
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &genAITextGenerator{client: client, model: cfg.Model, logger: logger}, nil
}

// Generate implements [TextGenerator]. Thinking is disabled; the answers
// are short operator-facing messages.
func (g *genAITextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	})
	if err != nil {
		g.logger.Err(err).Str("func", "*genAITextGenerator.Generate").Str("model", g.model).Msg("GenAI request failed")
		return "", fmt.Errorf("%w: GenAI generate failed: %w", ErrRemoteUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty GenAI answer", ErrInvalidFormat)
	}
	return text, nil
}
