// Package quote provides QuoteProvider implementations for the finance
// retrieval agent.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marketwatch/finagent"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// Yahoo retrieves quotes from the Yahoo Finance chart API. No API key is
// required, but requests without a browser-like User-Agent are rejected.
type Yahoo struct {
	baseURL string
	client  *http.Client
}

// NewYahoo constructs a Yahoo quote provider with a modest timeout.
func NewYahoo() *Yahoo {
	return &Yahoo{baseURL: defaultYahooBaseURL, client: &http.Client{Timeout: 10 * time.Second}}
}

// NewYahooWithClient constructs a Yahoo quote provider using the supplied
// HTTP client and base URL. Tests point this at a local server.
func NewYahooWithClient(client *http.Client, baseURL string) *Yahoo {
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	return &Yahoo{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Quote fetches the latest price for the symbol.
func (y *Yahoo) Quote(ctx context.Context, symbol string) (finagent.Quote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return finagent.Quote{}, errors.New("symbol is empty")
	}

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", y.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return finagent.Quote{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := y.client.Do(req)
	if err != nil {
		return finagent.Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return finagent.Quote{}, fmt.Errorf("yahoo http %d", resp.StatusCode)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return finagent.Quote{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if payload.Chart.Error != nil {
		return finagent.Quote{}, fmt.Errorf("yahoo: %s: %s", payload.Chart.Error.Code, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return finagent.Quote{}, fmt.Errorf("yahoo: no result for %s", symbol)
	}

	meta := payload.Chart.Result[0].Meta
	if meta.RegularMarketPrice == 0 {
		return finagent.Quote{}, fmt.Errorf("yahoo: no market price for %s", symbol)
	}

	q := finagent.Quote{
		Symbol:    meta.Symbol,
		Price:     meta.RegularMarketPrice,
		Currency:  meta.Currency,
		PrevClose: meta.ChartPreviousClose,
		Source:    "Yahoo Finance",
	}
	if meta.ChartPreviousClose != 0 {
		q.ChangePct = (meta.RegularMarketPrice - meta.ChartPreviousClose) / meta.ChartPreviousClose * 100
	}
	return q, nil
}
