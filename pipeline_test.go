package finagent

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(web, finance, analyst, reporter Runner) *Pipeline {
	quiet := logrus.New()
	quiet.SetLevel(logrus.PanicLevel)
	return NewPipeline(web, finance, analyst, reporter,
		WithLogger(quiet),
		WithPipelineClock(fixedClock),
	)
}

func TestRetrieveNewsNeverRaises(t *testing.T) {
	web := &scriptedRunner{name: "web", err: errors.New("agent exploded")}
	p := newTestPipeline(web, nil, nil, nil)

	r := p.RetrieveNews(context.Background(), "AAPL")
	assert.False(t, r.Valid)
	assert.Equal(t, SentinelNoData, r.Text)
}

func TestRetrieveNewsEmptyResponseIsSentinel(t *testing.T) {
	web := &scriptedRunner{name: "web", replies: []string{"   "}}
	p := newTestPipeline(web, nil, nil, nil)

	r := p.RetrieveNews(context.Background(), "AAPL")
	assert.False(t, r.Valid)
	assert.Equal(t, SentinelNoData, r.Text)
}

func TestRetrieveQuoteNeverRaises(t *testing.T) {
	finance := &scriptedRunner{name: "finance", err: errors.New("agent exploded")}
	p := newTestPipeline(nil, finance, nil, nil)

	r := p.RetrieveQuote(context.Background(), "AAPL")
	assert.False(t, r.Valid)
	assert.Equal(t, SentinelNoValidData, r.Text)
}

func TestRetrieveQuoteMissingMarkerIsDiscarded(t *testing.T) {
	finance := &scriptedRunner{name: "finance", replies: []string{"Apple is a company that makes phones."}}
	p := newTestPipeline(nil, finance, nil, nil)

	r := p.RetrieveQuote(context.Background(), "AAPL")
	assert.False(t, r.Valid)
	assert.Equal(t, SentinelNoValidData, r.Text)
}

func TestRetrieveQuoteResolvesSymbol(t *testing.T) {
	finance := &scriptedRunner{name: "finance", replies: []string{"CRYPTO: BTC-USD | PRICE: $61000.00"}}
	p := newTestPipeline(nil, finance, nil, nil)

	r := p.RetrieveQuote(context.Background(), "btc!")
	assert.True(t, r.Valid)
	require.Len(t, finance.tasks, 1)
	assert.Equal(t, "BTC-USD", finance.tasks[0])
}

func TestProcessBlankQueryShortCircuits(t *testing.T) {
	web := &scriptedRunner{name: "web"}
	finance := &scriptedRunner{name: "finance"}
	analyst := &scriptedRunner{name: "analyst"}
	reporter := &scriptedRunner{name: "reporter"}
	p := newTestPipeline(web, finance, analyst, reporter)

	out := p.Process(context.Background(), "   \t ")
	assert.Equal(t, MsgEmptyQuery, out)
	assert.Empty(t, web.tasks)
	assert.Empty(t, finance.tasks)
	assert.Empty(t, analyst.tasks)
	assert.Empty(t, reporter.tasks)
}

func TestProcessAnalysisQuoteOnly(t *testing.T) {
	// Scenario: the quote source has valid data, the web source has none.
	web := &scriptedRunner{name: "web", replies: []string{"No data found."}}
	finance := &scriptedRunner{name: "finance", replies: []string{"STOCK: AAPL | PRICE: $172.50"}}
	analyst := &scriptedRunner{name: "analyst", replies: []string{"# AAPL Analysis"}}
	p := newTestPipeline(web, finance, analyst, &scriptedRunner{name: "reporter"})

	out := p.Process(context.Background(), "AAPL")
	assert.Equal(t, "# AAPL Analysis", out)

	require.Len(t, analyst.tasks, 1)
	prompt := analyst.tasks[0]
	assert.Contains(t, prompt, "Finance Data: STOCK: AAPL | PRICE: $172.50")
	// No second price to compare, so the validation note stays empty.
	assert.Contains(t, prompt, "Validation Notes: \nCurrent Date: 2026-08-31")
	// Quote was valid, so the web agent ran exactly once (cross-check).
	assert.Len(t, web.tasks, 1)
}

func TestProcessAnalysisDiscrepancyWarning(t *testing.T) {
	web := &scriptedRunner{name: "web", replies: []string{"Bitcoin surged past $62500.00 this week."}}
	finance := &scriptedRunner{name: "finance", replies: []string{"CRYPTO: BTC-USD | PRICE: $61000.00"}}
	analyst := &scriptedRunner{name: "analyst", replies: []string{"# BTC-USD Analysis"}}
	p := newTestPipeline(web, finance, analyst, &scriptedRunner{name: "reporter"})

	out := p.Process(context.Background(), "BTC")
	assert.Equal(t, "# BTC-USD Analysis", out)

	require.Len(t, analyst.tasks, 1)
	prompt := analyst.tasks[0]
	// 62500 vs 61000 is ~2.46%, above the 2% threshold.
	assert.Contains(t, prompt, "Price discrepancy detected (2.46%)")
	assert.Contains(t, prompt, "Web Data: Bitcoin surged past $62500.00")
}

func TestProcessAnalysisFallsBackToWebData(t *testing.T) {
	web := &scriptedRunner{name: "web", replies: []string{"AAPL trades around $171.00 today.", "AAPL trades around $171.00 today."}}
	finance := &scriptedRunner{name: "finance", err: errors.New("quote source down")}
	analyst := &scriptedRunner{name: "analyst", replies: []string{"answer"}}
	p := newTestPipeline(web, finance, analyst, &scriptedRunner{name: "reporter"})

	out := p.Process(context.Background(), "AAPL")
	assert.Equal(t, "answer", out)

	// One call for the fallback finance data, one for the cross-check.
	assert.Len(t, web.tasks, 2)
	require.Len(t, analyst.tasks, 1)
	assert.Contains(t, analyst.tasks[0], "Finance Data: AAPL trades around $171.00")
}

func TestProcessNewsMode(t *testing.T) {
	web := &scriptedRunner{name: "web", replies: []string{"- Fed holds rates"}}
	finance := &scriptedRunner{name: "finance"}
	reporter := &scriptedRunner{name: "reporter", replies: []string{"# Financial News Summary"}}
	p := newTestPipeline(web, finance, &scriptedRunner{name: "analyst"}, reporter)

	out := p.Process(context.Background(), "recent tech sector news")
	assert.Equal(t, "# Financial News Summary", out)

	assert.Empty(t, finance.tasks, "news mode must not hit the quote source")
	require.Len(t, reporter.tasks, 1)
	assert.Contains(t, reporter.tasks[0], "News Data: - Fed holds rates")
	assert.Contains(t, reporter.tasks[0], "Current Date: 2026-08-31")
}

func TestProcessSynthesisFailures(t *testing.T) {
	web := &scriptedRunner{name: "web", replies: []string{"text", "text", "text"}}
	finance := &scriptedRunner{name: "finance", replies: []string{"STOCK: AAPL | PRICE: $172.50"}}
	analyst := &scriptedRunner{name: "analyst", err: errors.New("model down")}
	reporter := &scriptedRunner{name: "reporter", err: errors.New("model down")}
	p := newTestPipeline(web, finance, analyst, reporter)

	assert.Equal(t, MsgAnalysisUnavailable, p.Process(context.Background(), "AAPL"))
	assert.Equal(t, MsgNewsUnavailable, p.Process(context.Background(), "market news"))
}

func TestIsNewsQuery(t *testing.T) {
	assert.True(t, IsNewsQuery("latest crypto NEWS"))
	assert.True(t, IsNewsQuery("market trends for renewable energy"))
	assert.True(t, IsNewsQuery("today's headlines"))
	assert.False(t, IsNewsQuery("AAPL stock analysis"))
}
