package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const (
	ProviderGenAI     = "genai"
	ProviderLangChain = "langchain"
)

type langChainService struct {
	model       llms.Model
	temperature float32
	logger      zerolog.Logger
}

// NewLangChainService builds a generator on top of langchaingo's Google AI model.
func NewLangChainService(ctx context.Context, apiKey, modelName string, temperature float32, logger zerolog.Logger) (TextGenerator, error) {
	svc := &langChainService{
		temperature: temperature,
		logger:      logger.With().Str("component", "langchain").Logger(),
	}

	if apiKey == "" {
		svc.logger.Warn().Msg("⚠️ Google AI API key is not set, analysis requests will fail")
		return svc, nil
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create langchain googleai client: %w", err)
	}
	svc.model = llm

	return svc, nil
}

// GenerateText implements TextGenerator.
func (l *langChainService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if l.model == nil {
		return "", NewConfigurationError("API key is missing.")
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, l.model, prompt,
		llms.WithTemperature(float64(l.temperature)),
	)
	if err != nil {
		l.logger.Error().Err(err).Msg("❌ LangChain generation error")
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	return resp, nil
}

// NewTextGenerator picks the model provider named in configuration.
func NewTextGenerator(ctx context.Context, provider, apiKey, modelName string, temperature float32, logger zerolog.Logger) (TextGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", ProviderGenAI:
		return NewGeminiService(ctx, apiKey, modelName, temperature, logger)
	case ProviderLangChain:
		return NewLangChainService(ctx, apiKey, modelName, temperature, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
