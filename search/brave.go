package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/marketwatch/finagent"
)

// braveKeyGate holds a per-API-key mutex and the earliest time the next
// request may fire. All Brave instances sharing an API key share one gate
// so that only one request per second is issued for that key, matching
// the Brave rate limit of 1 req/s.
type braveKeyGate struct {
	mu      sync.Mutex
	readyAt time.Time
}

var (
	braveGatesMu sync.Mutex
	braveGates   = map[string]*braveKeyGate{}
)

func braveGateFor(apiKey string) *braveKeyGate {
	braveGatesMu.Lock()
	defer braveGatesMu.Unlock()
	g, ok := braveGates[apiKey]
	if !ok {
		g = &braveKeyGate{}
		braveGates[apiKey] = g
	}
	return g
}

// waitAndLock blocks until the caller may issue a request, then returns
// with the gate locked. The caller must call unlock(delay) after the
// response to set the next allowed time and release the lock.
func (g *braveKeyGate) waitAndLock(ctx context.Context) error {
	g.mu.Lock()
	if wait := time.Until(g.readyAt); wait > 0 {
		g.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		g.mu.Lock()
	}
	return nil
}

func (g *braveKeyGate) unlock(delay time.Duration) {
	g.readyAt = time.Now().Add(delay)
	g.mu.Unlock()
}

// Brave uses the Brave Search API. An API key is required via
// X-Subscription-Token.
type Brave struct {
	APIKey string
	client *http.Client
}

// NewBrave constructs a Brave search provider.
func NewBrave(apiKey string) *Brave {
	return &Brave{APIKey: apiKey, client: &http.Client{Timeout: 10 * time.Second}}
}

// NewBraveWithClient constructs a Brave search provider using the
// supplied HTTP client.
func NewBraveWithClient(apiKey string, client *http.Client) *Brave {
	return &Brave{APIKey: apiKey, client: client}
}

// Search executes a Brave query. Concurrent calls sharing the same API
// key are serialised through the shared per-key gate.
func (b *Brave) Search(ctx context.Context, query string) ([]finagent.SearchResult, error) {
	if strings.TrimSpace(b.APIKey) == "" {
		return nil, errors.New("brave: API key is missing")
	}
	endpoint := "https://api.search.brave.com/res/v1/news/search?q=" + url.QueryEscape(query)
	gate := braveGateFor(b.APIKey)

	var resp *http.Response
	var err error
	for {
		if err := gate.waitAndLock(ctx); err != nil {
			return nil, err
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if reqErr != nil {
			gate.unlock(0)
			return nil, reqErr
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Subscription-Token", b.APIKey)

		resp, err = b.client.Do(req)
		if err != nil {
			gate.unlock(1 * time.Second) // back off before letting others try
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			gate.unlock(braveNextDelay(resp.Header))
			break
		}

		// 429: read the retry delay, tell the gate, then loop.
		wait := braveRetryDelay(resp.Header)
		resp.Body.Close()
		gate.unlock(wait)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave http %d", resp.StatusCode)
	}

	var payload struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	results := make([]finagent.SearchResult, 0, len(payload.Results))
	for _, r := range payload.Results {
		results = append(results, finagent.SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Description})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}

// braveRetryDelay reads the X-RateLimit-Reset header to determine how
// long to wait before retrying. The header is a comma-separated list of
// reset times in seconds; the smallest value wins. Falls back to 1 s.
func braveRetryDelay(h http.Header) time.Duration {
	raw := h.Get("X-RateLimit-Reset")
	if raw == "" {
		return 1 * time.Second
	}
	minReset := -1
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			continue
		}
		if minReset < 0 || n < minReset {
			minReset = n
		}
	}
	if minReset <= 0 {
		return 1 * time.Second
	}
	return time.Duration(minReset) * time.Second
}

// braveNextDelay reads X-RateLimit-Remaining to decide how long to hold
// the gate before the next request. An exhausted per-second bucket means
// wait 1 s; otherwise the next caller may go immediately.
func braveNextDelay(h http.Header) time.Duration {
	raw := h.Get("X-RateLimit-Remaining")
	if raw == "" {
		return 1 * time.Second // be conservative when the header is absent
	}
	parts := strings.SplitN(raw, ",", 2)
	perSecond, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || perSecond <= 0 {
		return 1 * time.Second
	}
	return 0
}
