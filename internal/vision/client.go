// Package vision wraps the external generative vision model: image intake
// validation, the fixed analysis prompt, the model call itself, and the
// fallback to a simulated assessment when the call fails.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the vision model used when none is configured.
const DefaultModel = "gpt-4o"

const jpegQuality = 90

// ModelClient is a single request/response exchange with the external
// generative model: a prompt and an image in, free text out.
type ModelClient interface {
	Analyze(ctx context.Context, prompt string, img image.Image) (string, error)
}

// ClientConfig holds configuration for the OpenAI-backed model client.
type ClientConfig struct {
	// APIKey authenticates against the AI service (required).
	APIKey string

	// Model is the model identifier (optional, defaults to DefaultModel).
	Model string

	// BaseURL overrides the API base URL (optional).
	BaseURL string

	// HTTPClient is the transport for API calls (optional). Production
	// wiring passes a circuit-breaker transport from internal/provider/resilience.
	HTTPClient *http.Client
}

// OpenAIClient calls a chat-completion vision model.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a model client from the given configuration.
func NewOpenAIClient(cfg ClientConfig) *OpenAIClient {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		apiCfg.HTTPClient = cfg.HTTPClient
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(apiCfg),
		model:  model,
	}
}

// Model returns the configured model identifier.
func (c *OpenAIClient) Model() string {
	return c.model
}

// Analyze sends the prompt and image to the model and returns its raw text
// reply. The image travels as a JPEG base64 data URL.
func (c *OpenAIClient) Analyze(ctx context.Context, prompt string, img image.Image) (string, error) {
	dataURL, err := encodeImageDataURL(img)
	if err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func encodeImageDataURL(img image.Image) (string, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encoding image: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
