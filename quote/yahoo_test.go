package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{
  "chart": {
    "result": [
      {
        "meta": {
          "currency": "USD",
          "symbol": "AAPL",
          "regularMarketPrice": 172.5,
          "chartPreviousClose": 170.0
        }
      }
    ],
    "error": null
  }
}`

func TestYahooQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	y := NewYahooWithClient(srv.Client(), srv.URL)
	q, err := y.Quote(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, 172.5, q.Price)
	assert.Equal(t, "USD", q.Currency)
	assert.Equal(t, 170.0, q.PrevClose)
	assert.InDelta(t, 1.47, q.ChangePct, 0.01)
	assert.Equal(t, "Yahoo Finance", q.Source)
}

func TestYahooQuoteProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	y := NewYahooWithClient(srv.Client(), srv.URL)
	_, err := y.Quote(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not Found")
}

func TestYahooQuoteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	y := NewYahooWithClient(srv.Client(), srv.URL)
	_, err := y.Quote(context.Background(), "AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yahoo http 500")
}

func TestYahooQuoteEmptySymbol(t *testing.T) {
	y := NewYahoo()
	_, err := y.Quote(context.Background(), "  ")
	assert.Error(t, err)
}
