package insights

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    *logrus.Logger
}

// NewGeminiClient creates a Gemini-backed client. The API key comes from
// configuration (GEMINI_API_KEY) and is never logged.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *logrus.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	if logger == nil {
		logger = logrus.New()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(model),
		log:    logger,
	}, nil
}

// GenerateText sends a single prompt and returns the first candidate's text
// content. An answer without text yields an empty string, which the
// requester maps to its fixed fallback message.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	c.log.Debug("Sending insight prompt to Gemini")

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
