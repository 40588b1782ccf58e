package finagent

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel strings substituted for retrieval output on failure. They stay
// exported because the synthesis prompt and the UI still display them;
// control flow goes through Retrieval.Valid instead.
const (
	SentinelNoData      = "No data found."
	SentinelNoValidData = "No valid data found"
)

// User-facing messages returned by Process.
const (
	MsgEmptyQuery          = "Please enter a valid query."
	MsgAnalysisUnavailable = "Financial analysis unavailable."
	MsgNewsUnavailable     = "News analysis unavailable."
)

// priceMarker must appear in a quote agent's output for it to count as
// valid data. The check is a presence test, not a schema validation.
const priceMarker = "PRICE: $"

var newsKeywords = []string{"news", "trends", "headlines"}

// Pipeline drives one query through retrieval, validation, and synthesis.
// Every step runs sequentially; failures are converted to sentinels or
// user-facing messages as close to their source as possible, so Process
// never returns an error.
type Pipeline struct {
	webAgent     Runner
	financeAgent Runner
	analyst      Runner // synthesis agent, analysis template
	reporter     Runner // synthesis agent, news template
	log          logrus.FieldLogger
	now          func() time.Time
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets the logger used for operator-facing failure logs.
func WithLogger(log logrus.FieldLogger) PipelineOption {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithPipelineClock overrides the time source used for the date stamp in
// prompt context.
func WithPipelineClock(now func() time.Time) PipelineOption {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPipeline wires the four agents into a pipeline.
func NewPipeline(webAgent, financeAgent, analyst, reporter Runner, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		webAgent:     webAgent,
		financeAgent: financeAgent,
		analyst:      analyst,
		reporter:     reporter,
		log:          logrus.StandardLogger(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsNewsQuery reports whether the query asks for news rather than a
// ticker analysis.
func IsNewsQuery(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range newsKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// Process answers one user query and returns rendered markdown. Blank
// queries short-circuit before any retrieval. News-flavoured queries go
// through the reporter; everything else is treated as a ticker analysis
// with cross-source price validation.
func (p *Pipeline) Process(ctx context.Context, query string) string {
	if strings.TrimSpace(query) == "" {
		return MsgEmptyQuery
	}

	if IsNewsQuery(query) {
		news := p.RetrieveNews(ctx, query)
		prompt := buildNewsContext(news.Text, p.now().Format("2006-01-02"))
		text, err := p.reporter.Run(ctx, prompt)
		if err != nil {
			p.log.WithError(err).WithField("query", query).Error("news synthesis failed")
			return MsgNewsUnavailable
		}
		return text
	}

	finance := p.RetrieveQuote(ctx, query)
	if !finance.Valid {
		// Fall back to web data when the quote source has nothing usable.
		finance = p.RetrieveNews(ctx, query)
	}

	financePrice := ExtractPrice(finance.Text)
	webExtra := p.RetrieveNews(ctx, query)
	webPrice := ExtractPrice(webExtra.Text)

	validation := Reconcile(webPrice, financePrice)

	prompt := buildAnalysisContext(webExtra.Text, finance.Text, validation, p.now().Format("2006-01-02"))
	text, err := p.analyst.Run(ctx, prompt)
	if err != nil {
		p.log.WithError(err).WithField("query", query).Error("financial synthesis failed")
		return MsgAnalysisUnavailable
	}
	return text
}

// RetrieveNews runs the web-search agent for the query. Any error or
// empty response becomes the no-data sentinel; retrieval never raises to
// its caller.
func (p *Pipeline) RetrieveNews(ctx context.Context, query string) Retrieval {
	text, err := p.webAgent.Run(ctx, query)
	if err != nil {
		p.log.WithError(err).WithField("query", query).Error("web data retrieval failed")
		return Retrieval{Text: SentinelNoData}
	}
	if strings.TrimSpace(text) == "" {
		return Retrieval{Text: SentinelNoData}
	}
	return Retrieval{Text: text, Valid: true}
}

// RetrieveQuote resolves the query to a symbol and runs the finance agent
// for it. A response missing the price marker is discarded as invalid
// even though text was received.
func (p *Pipeline) RetrieveQuote(ctx context.Context, query string) Retrieval {
	symbol := ResolveTicker(query)
	if symbol == "" {
		return Retrieval{Text: SentinelNoValidData}
	}
	text, err := p.financeAgent.Run(ctx, symbol)
	if err != nil {
		p.log.WithError(err).WithFields(logrus.Fields{"query": query, "symbol": symbol}).Error("quote retrieval failed")
		return Retrieval{Text: SentinelNoValidData}
	}
	if !strings.Contains(text, priceMarker) {
		p.log.WithField("symbol", symbol).Warn("quote response missing price marker")
		return Retrieval{Text: SentinelNoValidData}
	}
	return Retrieval{Text: text, Valid: true}
}
