package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/marketwatch/finagent"
)

// Tavily calls the Tavily search API.
type Tavily struct {
	APIKey string
	// Depth controls Tavily's depth parameter (basic or advanced).
	Depth  string
	client *http.Client
}

// NewTavily constructs a Tavily search provider.
func NewTavily(apiKey, depth string) *Tavily {
	if depth == "" {
		depth = "basic"
	}
	return &Tavily{APIKey: apiKey, Depth: depth, client: &http.Client{Timeout: 10 * time.Second}}
}

// NewTavilyWithClient constructs a Tavily search provider using the
// supplied HTTP client.
func NewTavilyWithClient(apiKey, depth string, client *http.Client) *Tavily {
	if depth == "" {
		depth = "basic"
	}
	return &Tavily{APIKey: apiKey, Depth: depth, client: client}
}

// Search posts a query to Tavily.
func (t *Tavily) Search(ctx context.Context, query string) ([]finagent.SearchResult, error) {
	if strings.TrimSpace(t.APIKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}

	payload, err := json.Marshal(map[string]any{
		"query":   query,
		"api_key": t.APIKey,
		"depth":   t.Depth,
		"topic":   "news",
	})
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	delay := 1 * time.Second
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.tavily.com/search", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = t.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		// Back off and retry on 429, doubling the delay each time up to 30 s.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	results := make([]finagent.SearchResult, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, finagent.SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Content})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}
