package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextGenerator_MissingAPIKey(t *testing.T) {
	for _, provider := range []string{"", ProviderGenAI, "GenAI", ProviderLangChain} {
		t.Run(provider, func(t *testing.T) {
			gen, err := NewTextGenerator(context.Background(), provider, "", "gemini-2.0-flash-001", 0.3, zerolog.Nop())
			require.NoError(t, err)

			reply, err := gen.GenerateText(context.Background(), "prompt")

			assert.Empty(t, reply)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
		})
	}
}

func TestNewTextGenerator_UnknownProvider(t *testing.T) {
	gen, err := NewTextGenerator(context.Background(), "openai", "key", "model", 0.3, zerolog.Nop())

	assert.Nil(t, gen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}
