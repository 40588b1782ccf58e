package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAnthropicBaseURL = "https://api.anthropic.com"

// Anthropic implements finagent.ModelProvider on the Anthropic messages
// API. None of the SDKs in use elsewhere cover Anthropic, so this is a
// small typed HTTP client.
type Anthropic struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewAnthropic constructs a provider for the given model. baseURL may be
// empty for api.anthropic.com.
func NewAnthropic(apiKey, baseURL, modelName string, temperature float64) *Anthropic {
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	return &Anthropic{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       modelName,
		temperature: temperature,
		maxTokens:   4096,
		client:      &http.Client{Timeout: 120 * time.Second},
	}
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Temperature float64            `json:"temperature,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one system+user exchange and returns the generated text.
// 429 responses are retried with a doubling delay, bounded by maxAttempts.
func (a *Anthropic) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if strings.TrimSpace(a.apiKey) == "" {
		return "", errors.New("anthropic: API key is missing")
	}

	payload, err := json.Marshal(anthropicRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		System:      systemPrompt,
		Temperature: a.temperature,
		Messages:    []anthropicMessage{{Role: "user", Content: userPrompt}},
	})
	if err != nil {
		return "", err
	}

	var resp *http.Response
	delay := 1 * time.Second
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewReader(payload))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", a.apiKey)
		req.Header.Set("anthropic-version", "2023-06-01")

		resp, err = a.client.Do(req)
		if err != nil {
			return "", err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxAttempts {
			break
		}
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("anthropic http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("anthropic: %s: %s", parsed.Error.Type, parsed.Error.Message)
	}

	var b strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.New("anthropic: response contained no text")
	}
	return text, nil
}
