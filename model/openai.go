// Package model provides ModelProvider implementations for hosted
// language model APIs.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
)

// maxAttempts bounds the rate-limit retry loop: the first call plus two
// backed-off retries.
const maxAttempts = 3

// OpenAI implements finagent.ModelProvider on any chat-completions
// compatible endpoint (OpenAI, Groq, vLLM, LiteLLM and friends) via the
// BaseURL override.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAI constructs a provider for the given model. baseURL may be
// empty for api.openai.com.
func NewOpenAI(apiKey, baseURL, modelName string, temperature float32) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAI{
		client:      openai.NewClientWithConfig(cfg),
		model:       modelName,
		temperature: temperature,
	}
}

// Generate sends one system+user exchange and returns the generated text.
// Rate-limit errors are retried up to maxAttempts times with exponential
// backoff and jitter; all other errors fail immediately.
func (o *OpenAI) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	op := func() (string, error) {
		resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       o.model,
			Temperature: o.temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
		})
		if err != nil {
			if isRateLimit(err) {
				return "", err
			}
			return "", backoff.Permanent(err)
		}
		if len(resp.Choices) == 0 {
			return "", backoff.Permanent(errors.New("response contained no choices"))
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	text, err := backoff.RetryWithData(op, backoff.WithContext(backoff.WithMaxRetries(bo, maxAttempts-1), ctx))
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return text, nil
}

// isRateLimit reports whether the error is a rate-limit response worth a
// polite retry.
func isRateLimit(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "rate limit")
}
