package reasoning

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"trustlens/internal/logging"
)

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int32
	Temperature     float32
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:          apiKey,
		Model:           "gemini-2.5-flash",
		Timeout:         2 * time.Minute,
		MaxOutputTokens: 16384,
		Temperature:     0.2,
	}
}

// GeminiClient implements Client against the Gemini API via the genai SDK.
type GeminiClient struct {
	client      *genai.Client
	model       string
	timeout     time.Duration
	maxTokens   int32
	temperature float32
}

// NewGeminiClient creates a Gemini-backed reasoning client. An empty API
// key is rejected here so callers can fail fast before any network attempt.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiConfig("").Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultGeminiConfig("").Timeout
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultGeminiConfig("").MaxOutputTokens
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		maxTokens:   cfg.MaxOutputTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Model returns the configured model identifier.
func (c *GeminiClient) Model() string {
	return c.model
}

// CompleteGrounded sends a prompt with the Google Search tool attached.
func (c *GeminiClient) CompleteGrounded(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.generate(ctx, systemPrompt, userPrompt, true)
}

// Complete sends a prompt with no tools attached.
func (c *GeminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.generate(ctx, systemPrompt, userPrompt, false)
}

func (c *GeminiClient) generate(ctx context.Context, systemPrompt, userPrompt string, grounded bool) (string, error) {
	// Auto-apply timeout if the caller supplied no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	logging.APIDebug("[Gemini] generate: model=%s grounded=%t system_len=%d user_len=%d",
		c.model, grounded, len(systemPrompt), len(userPrompt))

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(userPrompt), c.generationConfig(systemPrompt, grounded))
	if err != nil {
		logging.APIError("[Gemini] generate failed after %v: %v", time.Since(start), err)
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		logging.APIError("[Gemini] generate: empty completion after %v", time.Since(start))
		return "", fmt.Errorf("no completion returned")
	}

	logging.API("[Gemini] generate: completed in %v grounded=%t response_len=%d",
		time.Since(start), grounded, len(text))
	return text, nil
}

// generationConfig builds the per-call config. The content under review may
// itself describe harassment, violence, or explicit claims that still need
// analyzing, so every safety category is set to never block.
func (c *GeminiClient) generationConfig(systemPrompt string, grounded bool) *genai.GenerateContentConfig {
	temp := c.temperature
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: c.maxTokens,
		Temperature:     &temp,
		SafetySettings:  permissiveSafetySettings(),
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	if grounded {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

func permissiveSafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, cat := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  cat,
			Threshold: genai.HarmBlockThresholdBlockNone,
		})
	}
	return settings
}
