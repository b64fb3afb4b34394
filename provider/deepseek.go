package provider

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/PolyglotLabs/mjtrans"
)

// DeepSeek API defaults. The chat endpoint is OpenAI-compatible, so the
// client reuses the go-openai wire types with a custom base URL.
const (
	DefaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
	deepseekModel          = "deepseek-chat"
	deepseekTimeout        = 30 * time.Second
	deepseekTemperature    = 0.3

	// Output-token ceilings per operation mode.
	maxTokensPlain       = 1000
	maxTokensInteractive = 1500
)

// DeepSeekClient implements Client against the DeepSeek chat API.
type DeepSeekClient struct {
	client     *openai.Client
	configured bool
}

// DeepSeekConfig holds configuration for the DeepSeek client.
type DeepSeekConfig struct {
	APIKey  string // API key (required for calls; missing key fails fast)
	BaseURL string // Custom endpoint (default: DefaultDeepSeekBaseURL)
}

// NewDeepSeekClient creates a new DeepSeek client. Credentials are
// captured once; the client is stateless afterwards and safe for
// concurrent use.
func NewDeepSeekClient(cfg DeepSeekConfig) *DeepSeekClient {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	if config.BaseURL == "" {
		config.BaseURL = DefaultDeepSeekBaseURL
	}
	config.HTTPClient = &http.Client{Timeout: deepseekTimeout}

	return &DeepSeekClient{
		client:     openai.NewClientWithConfig(config),
		configured: cfg.APIKey != "",
	}
}

// Complete sends one chat completion and returns the raw model output.
func (c *DeepSeekClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if !c.configured {
		return "", &mjtrans.ProviderError{
			Provider: mjtrans.ProviderDeepSeek,
			Code:     mjtrans.CodeNotConfigured,
			Message:  "DeepSeek API key is not configured",
		}
	}

	maxTokens := maxTokensPlain
	if req.Mode == mjtrans.ModeInteractive {
		maxTokens = maxTokensInteractive
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: deepseekModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: deepseekTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", mapDeepSeekError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &mjtrans.ProviderError{
			Provider:  mjtrans.ProviderDeepSeek,
			Code:      mjtrans.CodeProviderUnavailable,
			Message:   "no response from DeepSeek",
			Retryable: true,
		}
	}

	return resp.Choices[0].Message.Content, nil
}

// mapDeepSeekError converts transport and API errors into the typed
// failure taxonomy.
func mapDeepSeekError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return &mjtrans.ProviderError{
				Provider: mjtrans.ProviderDeepSeek,
				Code:     mjtrans.CodeInvalidCredentials,
				Message:  "DeepSeek API key is invalid or expired",
				Cause:    err,
			}
		case http.StatusTooManyRequests:
			return &mjtrans.ProviderError{
				Provider:  mjtrans.ProviderDeepSeek,
				Code:      mjtrans.CodeRateLimited,
				Message:   "DeepSeek API rate limit exceeded",
				Cause:     err,
				Retryable: true,
			}
		}
	}

	if isTimeout(err) {
		return &mjtrans.ProviderError{
			Provider:  mjtrans.ProviderDeepSeek,
			Code:      mjtrans.CodeTimeout,
			Message:   "DeepSeek translation request timed out",
			Cause:     err,
			Retryable: true,
		}
	}

	return &mjtrans.ProviderError{
		Provider:  mjtrans.ProviderDeepSeek,
		Code:      mjtrans.CodeProviderUnavailable,
		Message:   "DeepSeek translation service is unavailable",
		Cause:     err,
		Retryable: true,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Verify DeepSeekClient implements Client
var _ Client = (*DeepSeekClient)(nil)
