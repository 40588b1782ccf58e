package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/marketwatch/finagent"
)

const maxResults = 5

// ddgGate enforces a global limit of one query per second across all
// DuckDuckGo instances and goroutines.
var ddgGate struct {
	mu   sync.Mutex
	last time.Time
}

// DuckDuckGo implements a searcher using DuckDuckGo's HTML lite interface.
type DuckDuckGo struct {
	client *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo searcher with a modest timeout.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{client: &http.Client{Timeout: 15 * time.Second}}
}

// NewDuckDuckGoWithClient creates a DuckDuckGo searcher using the supplied
// HTTP client. This is useful for overriding the default timeout.
func NewDuckDuckGoWithClient(client *http.Client) *DuckDuckGo {
	return &DuckDuckGo{client: client}
}

// Search scrapes the DuckDuckGo lite HTML page for results.
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]finagent.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	if err := waitDDGTurn(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("q", query)

	var resp *http.Response
	delay := 1 * time.Second
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://lite.duckduckgo.com/lite/", strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", browserUserAgent)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err = d.client.Do(req)
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
		return nil, fmt.Errorf("duckduckgo http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return parseLiteResults(string(body)), nil
}

// waitDDGTurn blocks until the global 1 QPS window allows a request.
func waitDDGTurn(ctx context.Context) error {
	ddgGate.mu.Lock()
	if wait := time.Until(ddgGate.last.Add(time.Second)); wait > 0 {
		ddgGate.mu.Unlock()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
		ddgGate.mu.Lock()
	}
	ddgGate.last = time.Now()
	ddgGate.mu.Unlock()
	return nil
}

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	liteLinkRegex    = regexp.MustCompile(`<a[^>]*class=['"]result-link['"][^>]*href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	liteLinkAltRegex = regexp.MustCompile(`<a[^>]*href=['"]([^'"]+)['"][^>]*class=['"]result-link['"][^>]*>([^<]+)</a>`)
	liteSnippetRegex = regexp.MustCompile(`<td[^>]*class=['"]result-snippet['"][^>]*>([^<]+(?:<[^>]+>[^<]*</[^>]+>)*[^<]*)</td>`)
	anyLinkRegex     = regexp.MustCompile(`<a[^>]+href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	htmlTagRegex     = regexp.MustCompile(`<[^>]+>`)
)

// parseLiteResults extracts search results from the DuckDuckGo lite HTML.
// The lite page pairs result links with snippet table cells.
func parseLiteResults(html string) []finagent.SearchResult {
	links := liteLinkRegex.FindAllStringSubmatch(html, -1)
	if len(links) == 0 {
		links = liteLinkAltRegex.FindAllStringSubmatch(html, -1)
	}
	snippets := liteSnippetRegex.FindAllStringSubmatch(html, -1)

	var results []finagent.SearchResult
	for i, m := range links {
		if len(m) < 3 {
			continue
		}
		u := strings.TrimSpace(m[1])
		title := decodeHTML(m[2])
		if u == "" || title == "" {
			continue
		}
		snippet := ""
		if i < len(snippets) && len(snippets[i]) > 1 {
			snippet = decodeHTML(snippets[i][1])
		}
		results = append(results, finagent.SearchResult{Title: title, URL: u, Snippet: snippet})
		if len(results) >= maxResults {
			break
		}
	}

	if len(results) == 0 {
		results = parseAnyLinks(html)
	}
	return results
}

// parseAnyLinks is the last-resort parse: collect external-looking links
// when the structured patterns found nothing.
func parseAnyLinks(html string) []finagent.SearchResult {
	var results []finagent.SearchResult
	seen := make(map[string]bool)
	for _, m := range anyLinkRegex.FindAllStringSubmatch(html, -1) {
		if len(m) < 3 {
			continue
		}
		u := strings.TrimSpace(m[1])
		title := decodeHTML(m[2])
		if strings.Contains(u, "duckduckgo.com") ||
			strings.HasPrefix(u, "/") ||
			strings.HasPrefix(u, "#") ||
			strings.HasPrefix(u, "javascript:") {
			continue
		}
		if len(title) < 5 || seen[u] {
			continue
		}
		seen[u] = true
		results = append(results, finagent.SearchResult{Title: title, URL: u})
		if len(results) >= maxResults {
			break
		}
	}
	return results
}

// decodeHTML strips tags and decodes the entities that appear on the
// lite page.
func decodeHTML(s string) string {
	s = htmlTagRegex.ReplaceAllString(s, "")
	r := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
	return strings.TrimSpace(r.Replace(s))
}
