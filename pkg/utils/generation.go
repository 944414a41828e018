package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	itinerarySystemPrompt = "You are an AI travel assistant specializing in creating detailed, personalized travel itineraries."
	chatSystemPrompt      = "You are an AI travel assistant and customer support expert."

	itineraryMaxTokens   = 2000
	itineraryTemperature = 0.7
	chatMaxTokens        = 100
	chatTemperature      = 0.7
)

// GenerationClientInterface wraps the outbound text-generation call. Sampling
// parameters are fixed per operation so the reply format stays stable enough
// for the itinerary parser.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	GenerateChatReply(ctx context.Context, message string) (string, error)
}

// ---------------- OpenAI provider ----------------

type OpenAIGenerationClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIGenerationClient creates an OpenAI-backed generation client.
// baseURL may be empty to use the public API endpoint.
func NewOpenAIGenerationClient(apiKey, model, baseURL string, timeout time.Duration) *OpenAIGenerationClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAIGenerationClient{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}
}

func (c *OpenAIGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, itinerarySystemPrompt, prompt, itineraryMaxTokens, itineraryTemperature)
}

func (c *OpenAIGenerationClient) GenerateChatReply(ctx context.Context, message string) (string, error) {
	return c.complete(ctx, chatSystemPrompt, message, chatMaxTokens, chatTemperature)
}

func (c *OpenAIGenerationClient) complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrGenerationUpstream)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return mapStatusCode(apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return mapStatusCode(reqErr.HTTPStatusCode, err)
	}

	return fmt.Errorf("%w: %v", ErrGenerationUpstream, err)
}

func mapStatusCode(status int, err error) error {
	switch status {
	case 401, 403:
		return fmt.Errorf("%w: %v", ErrGenerationAuth, err)
	case 429:
		return fmt.Errorf("%w: %v", ErrGenerationRateLimited, err)
	default:
		return fmt.Errorf("%w: %v", ErrGenerationUpstream, err)
	}
}

// ---------------- Gemini provider ----------------

type GeminiGenerationClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiGenerationClient(apiKey, model string, timeout time.Duration) (*GeminiGenerationClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *GeminiGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, itinerarySystemPrompt, prompt, itineraryMaxTokens, itineraryTemperature)
}

func (c *GeminiGenerationClient) GenerateChatReply(ctx context.Context, message string) (string, error) {
	return c.generate(ctx, chatSystemPrompt, message, chatMaxTokens, chatTemperature)
}

func (c *GeminiGenerationClient) generate(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(int32(maxTokens))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", mapGeminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrGenerationUpstream)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return strings.TrimSpace(content), nil
}

func mapGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return mapStatusCode(apiErr.Code, err)
	}
	return fmt.Errorf("%w: %v", ErrGenerationUpstream, err)
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}

// NewGenerationClient creates the configured provider. Use "openai" or "gemini".
func NewGenerationClient(provider, apiKey, model, baseURL string, timeout time.Duration) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model, baseURL, timeout), nil
	case "gemini":
		return NewGeminiGenerationClient(apiKey, model, timeout)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
