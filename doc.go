// Package finagent answers free-text financial queries by wiring language
// model calls to web-search and financial-quote capabilities.
//
// Unlike tool-calling agent frameworks that let the model decide which
// tool to invoke, finagent runs a fixed, deterministic pipeline: the query
// is resolved to a market symbol, data is retrieved through configured
// agents, prices are extracted and cross-checked between sources, and a
// final synthesis agent renders the markdown answer.
//
// # Architecture
//
// The pipeline performs these steps for an analysis query:
//
//  1. ResolveTicker maps the query to a canonical symbol.
//  2. The finance agent fetches a quote and formats it under strict rules.
//  3. The web agent gathers news snippets for cross-verification.
//  4. ExtractPrice parses a dollar amount out of each text.
//  5. Reconcile flags relative differences above 2%.
//  6. The synthesis agent combines everything into the final answer.
//
// Failures are recovered at the stage where they occur and converted to
// sentinel values, so later stages always operate on plain text and a
// failed request never takes the process down.
//
// # Basic Usage
//
//	webAgent := finagent.NewAgent("Web Search Agent", llm,
//	    finagent.WithSearch(search.NewDuckDuckGo()),
//	    finagent.WithInstructions(finagent.WebSearchInstructions),
//	    finagent.WithMarkdown(),
//	)
//	financeAgent := finagent.NewAgent("Finance Agent", llm,
//	    finagent.WithQuote(quote.NewYahoo()),
//	    finagent.WithInstructions(finagent.FinanceInstructions),
//	)
//	analyst := finagent.NewAgent("Team Agent", llm,
//	    finagent.WithInstructions(finagent.AnalysisTeamInstructions),
//	    finagent.WithMarkdown(), finagent.WithCurrentDate(),
//	)
//	reporter := finagent.NewAgent("News Agent", llm,
//	    finagent.WithInstructions(finagent.NewsTeamInstructions),
//	    finagent.WithMarkdown(), finagent.WithCurrentDate(),
//	)
//
//	pipe := finagent.NewPipeline(webAgent, financeAgent, analyst, reporter)
//	answer := pipe.Process(ctx, "AAPL stock analysis")
//
// # Interfaces
//
// Implement ModelProvider to connect any language model:
//
//	type ModelProvider interface {
//	    Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
//	}
//
// Implement SearchProvider or QuoteProvider to supply data capabilities.
// The model and quote subdirectories contain ready-made implementations.
package finagent
