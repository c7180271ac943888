package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/polypal/internal/inference"
	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-flash"

	placeholderAPIKey = "your_gemini_api_key_here"

	safetyBlockedResponse = "Désolé, je ne peux pas répondre à ce message pour des raisons de sécurité. Pouvez-vous reformuler votre question?"
)

type Client struct {
	httpClient       *resty.Client
	apiKey           string
	model            string
	maxRetryAttempts uint
	retryDelay       time.Duration
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		client.httpClient.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every HTTP call; zero keeps resty's default of no timeout
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout > 0 {
			client.httpClient.SetTimeout(timeout)
		}
	}
}

func WithRetryDelay(delay time.Duration) Option {
	return func(client *Client) {
		client.retryDelay = delay
	}
}

func NewClient(apiKey, model string, retryAttempts uint, opts ...Option) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(DefaultBaseURL)
	httpClient.SetHeader("Content-Type", "application/json")

	if model == "" {
		model = DefaultModel
	}
	client := &Client{
		httpClient:       httpClient,
		apiKey:           apiKey,
		model:            model,
		maxRetryAttempts: retryAttempts,
		retryDelay:       100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

// IsConfigured reports whether a usable API key is set
func (client *Client) IsConfigured() bool {
	return IsUsableAPIKey(client.apiKey)
}

// IsUsableAPIKey rejects an empty key and the placeholder shipped in sample configs
func IsUsableAPIKey(apiKey string) bool {
	return apiKey != "" && apiKey != placeholderAPIKey
}

// GenerateTurn implements the inference.Client interface
func (client *Client) GenerateTurn(
	ctx context.Context,
	params inference.TurnRequest,
) (inference.TurnResult, error) {
	if strings.TrimSpace(params.Message) == "" {
		return inference.TurnResult{}, fmt.Errorf("%w: message is required", inference.ErrInvalidInput)
	}
	if !client.IsConfigured() {
		return inference.TurnResult{}, inference.ErrNotConfigured
	}

	var result inference.TurnResult
	if err := retry.Do(
		func() error {
			response, err := client.generateTurn(ctx, params)
			if err != nil {
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(inference.IsRetryable),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying Gemini API call",
				"attempt", n+1,
				"error", err)
		}),
	); err != nil {
		return inference.TurnResult{}, err
	}
	return result, nil
}

func (client *Client) generateTurn(
	ctx context.Context,
	params inference.TurnRequest,
) (inference.TurnResult, error) {
	requestBody := NewTextRequest(
		buildTurnPrompt(params.Context, params.CulturalTipsEnabled)+"\n\nMessage de l'utilisateur: "+params.Message,
		GenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	)
	requestBody.SafetySettings = DefaultSafetySettings()

	candidate, err := client.generateContent(ctx, requestBody)
	if err != nil {
		return inference.TurnResult{}, err
	}
	if candidate.FinishReason == FinishReasonSafety {
		slog.Default().Warn("Gemini blocked the response for safety reasons")
		return inference.TurnResult{
			IsCorrect: true,
			Response:  safetyBlockedResponse,
		}, nil
	}

	text, ok := candidate.Text()
	if !ok {
		return inference.TurnResult{}, fmt.Errorf("%w: candidate has no text part", inference.ErrUnexpectedResponse)
	}
	slog.Default().Debug("gemini response content",
		"model", client.model,
		"text", text,
	)
	return ParseTurn(text), nil
}

func (client *Client) generateContent(ctx context.Context, requestBody GenerateContentRequest) (Candidate, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", client.apiKey).
		SetBody(requestBody).
		SetResult(&GenerateContentResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", client.model))
	if err != nil {
		return Candidate{}, &inference.NetworkError{Err: err}
	}
	if response.IsError() {
		return Candidate{}, &inference.APIError{StatusCode: response.StatusCode(), Body: response.String()}
	}

	responseBody, ok := response.Result().(*GenerateContentResponse)
	if !ok || responseBody == nil || len(responseBody.Candidates) == 0 {
		return Candidate{}, fmt.Errorf("%w: %s", inference.ErrUnexpectedResponse, response.String())
	}
	return responseBody.Candidates[0], nil
}
