package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// TextGenerator is an opaque text-in/text-out model call. Implementations make
// a single attempt and return the reply verbatim, even when it is empty.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	logger      zerolog.Logger
}

// NewGeminiService builds a genai-backed generator. A missing API key is not
// fatal here: every call reports a configuration error instead.
func NewGeminiService(ctx context.Context, apiKey, modelName string, temperature float32, logger zerolog.Logger) (TextGenerator, error) {
	svc := &geminiService{
		modelName:   modelName,
		temperature: temperature,
		logger:      logger.With().Str("component", "gemini").Logger(),
	}

	if apiKey == "" {
		svc.logger.Warn().Msg("⚠️ Gemini API key is not set, analysis requests will fail")
		return svc, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	svc.client = client

	return svc, nil
}

// GenerateText implements TextGenerator.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", NewConfigurationError("API key is missing.")
	}

	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		g.logger.Error().Err(err).Str("model", g.modelName).Msg("❌ Gemini API error")
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		g.logger.Warn().Msg("⚠️ Gemini API returned nil response")
		return "", nil
	}

	g.logger.Debug().Int("candidates", len(resp.Candidates)).Msg("📊 Gemini response received")

	return resp.Text(), nil
}
