package provider

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/PolyglotLabs/mjtrans"
)

// geminiModel is the fixed model identifier used for all Gemini calls.
const geminiModel = "gemini-1.5-flash"

// GeminiClient implements Client against the Google Gemini API.
//
// Gemini has no separate system-role channel in this usage; the system
// instruction and user message are concatenated into one prompt.
type GeminiClient struct {
	client *genai.Client
}

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey string // API key (required for calls; missing key fails fast)
}

// NewGeminiClient creates a new Gemini client. With an empty API key
// the client is constructed unconfigured and every call fails fast.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return &GeminiClient{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, &mjtrans.ProviderError{
			Provider: mjtrans.ProviderGemini,
			Code:     mjtrans.CodeProviderUnavailable,
			Message:  "failed to create Gemini client",
			Cause:    err,
		}
	}

	return &GeminiClient{client: client}, nil
}

// Complete sends one content-generation call and returns the raw model
// output.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.client == nil {
		return "", &mjtrans.ProviderError{
			Provider: mjtrans.ProviderGemini,
			Code:     mjtrans.CodeNotConfigured,
			Message:  "Gemini API key is not configured",
		}
	}

	model := c.client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(req.System+"\n\n"+req.User))
	if err != nil {
		return "", &mjtrans.ProviderError{
			Provider:  mjtrans.ProviderGemini,
			Code:      mjtrans.CodeProviderUnavailable,
			Message:   "Gemini translation service is unavailable",
			Cause:     err,
			Retryable: true,
		}
	}

	text := collectText(resp)
	if text == "" {
		return "", &mjtrans.ProviderError{
			Provider:  mjtrans.ProviderGemini,
			Code:      mjtrans.CodeProviderUnavailable,
			Message:   "no response from Gemini",
			Retryable: true,
		}
	}

	return text, nil
}

// Close releases the underlying API connection.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// Verify GeminiClient implements Client
var _ Client = (*GeminiClient)(nil)
