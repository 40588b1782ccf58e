package finagent

import "context"

// SearchResult is a single item returned by a SearchProvider.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// SearchProvider executes a web/news query and returns results.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// Quote is the normalized price data returned by all quote providers.
type Quote struct {
	Symbol    string
	Price     float64
	Currency  string
	ChangePct float64 // percent change over the previous close
	PrevClose float64
	Source    string
}

// QuoteProvider retrieves current price data for a resolved market symbol.
type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// ModelProvider is implemented by language model clients.
type ModelProvider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Runner is the capability interface exposed by agents: a task goes in,
// text comes out. The pipeline calls each runner directly and
// deterministically rather than letting a model decide which tool to use.
type Runner interface {
	Name() string
	Run(ctx context.Context, task string) (string, error)
}

// Retrieval is the typed result of a retrieval step. Text always holds
// usable prompt context (the sentinel string when Valid is false) so
// downstream stages branch on Valid instead of matching strings.
type Retrieval struct {
	Text  string
	Valid bool
}

// Price is an optionally-present extracted dollar amount.
type Price struct {
	Value float64
	OK    bool
}
