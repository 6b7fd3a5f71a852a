package reasoning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), GeminiConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestDefaultGeminiConfig(t *testing.T) {
	cfg := DefaultGeminiConfig("k")
	assert.Equal(t, "k", cfg.APIKey)
	assert.NotEmpty(t, cfg.Model)
	assert.Greater(t, cfg.Timeout, time.Duration(0))
	assert.Greater(t, cfg.MaxOutputTokens, int32(0))
}

func TestGenerationConfig_GroundedAttachesSearchTool(t *testing.T) {
	c := &GeminiClient{model: "gemini-2.5-flash", maxTokens: 1024, temperature: 0.2}

	cfg := c.generationConfig("system", true)
	require.Len(t, cfg.Tools, 1)
	assert.NotNil(t, cfg.Tools[0].GoogleSearch)
	require.NotNil(t, cfg.SystemInstruction)

	cfg = c.generationConfig("system", false)
	assert.Empty(t, cfg.Tools, "ungrounded calls must not attach tools")
}

func TestGenerationConfig_SafetyNeverBlocks(t *testing.T) {
	c := &GeminiClient{maxTokens: 1024}
	cfg := c.generationConfig("", true)

	require.Len(t, cfg.SafetySettings, 4)
	seen := map[genai.HarmCategory]bool{}
	for _, s := range cfg.SafetySettings {
		assert.Equal(t, genai.HarmBlockThresholdBlockNone, s.Threshold)
		seen[s.Category] = true
	}
	for _, cat := range []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	} {
		assert.True(t, seen[cat], "missing safety setting for %s", cat)
	}
}

func TestGenerationConfig_NoSystemInstructionWhenEmpty(t *testing.T) {
	c := &GeminiClient{maxTokens: 1024}
	cfg := c.generationConfig("", false)
	assert.Nil(t, cfg.SystemInstruction)
}
