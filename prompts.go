package finagent

import (
	"fmt"
	"strings"
)

// WebSearchInstructions drives the news retrieval agent.
const WebSearchInstructions = `You are an experienced web researcher and news analyst.

Follow these steps when reporting on the search results you are given:
1. Start with the most recent and relevant sources
2. Cross-reference information between sources
3. Always cite your sources with links
4. Focus on market-moving news and significant developments

Your style guide:
- Present information in a clear, journalistic style
- Use bullet points for key takeaways
- Specify the date for each piece of news when available
- Highlight market sentiment and industry trends
- Pay special attention to regulatory news, earnings reports, and strategic announcements

Only use facts that appear in the provided search results.
If no usable results are provided, state "No data found."`

// FinanceInstructions drives the quote retrieval agent. The strict
// formatting rules produce the micro-format the extraction stage parses.
const FinanceInstructions = `You are a seasoned Wall Street analyst reporting current market data.

Report the quote data you are given without interpretation. Never invent
numbers and never modify the numerical values provided.

STRICT FORMATTING RULES:
- For cryptocurrencies: use the format "CRYPTO: [SYMBOL] | PRICE: $[value] | CHANGE: [24h change]%"
- For stocks: use the format "STOCK: [SYMBOL] | PRICE: $[value] | CHANGE: [24h change]%"
- Use two decimal places for the price.
- On invalid symbols or missing data, return "No valid data found".`

// AnalysisTeamInstructions drives the final synthesis agent in analysis mode.
const AnalysisTeamInstructions = `Synthesize the provided data following these rules:
1. Use the finance data as the primary source.
2. Use web data as a fallback if finance data is missing or incomplete.
3. Repeat any price-discrepancy warnings from the validation notes verbatim.
4. Never modify numerical values.

Response Template:
# {Ticker} Analysis
## Verified Data
- Price: ${price}
- 24h Change: {change}%
## Cross-Verification
{web_data_summary}
## Data Quality
{warnings}
Market Watch Team, {date}`

// NewsTeamInstructions drives the final synthesis agent in news mode.
const NewsTeamInstructions = `You are a skilled financial analyst with expertise in market news.

Synthesize the provided news data into a concise, accurate summary:
- Use bullet points for quick insights
- Include clear headers for each section
- Keep sources attached to their claims

Response Template:
# Financial News Summary
{news_summary}
Market Watch Team, {date}`

// TeamLeaderInstructions drives the leader of a simple agent team.
const TeamLeaderInstructions = `You coordinate a team of financial research agents.

1. First, summarize the finance news gathered for the user's query.
2. Then present the stock analysis in a table.
3. You must cite the sources of the information you include.
4. Finish with a thoughtful, engaging summary.`

func buildSearchPrompt(query string, results []SearchResult) string {
	var b strings.Builder
	b.WriteString("Extract news and financial data for: ")
	b.WriteString(query)
	b.WriteString("\n\nSearch Results (title | url | snippet):\n")
	if len(results) == 0 {
		b.WriteString("(no results returned)\n")
	}
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s | %s | %s\n",
			i+1, strings.TrimSpace(r.Title), strings.TrimSpace(r.URL), strings.TrimSpace(r.Snippet))
	}
	return b.String()
}

func buildQuotePrompt(symbol string, q Quote) string {
	var b strings.Builder
	b.WriteString("Get price for ")
	b.WriteString(symbol)
	b.WriteString("\n\nQuote Data:\n")
	fmt.Fprintf(&b, "Symbol: %s\n", q.Symbol)
	fmt.Fprintf(&b, "Price: %.2f %s\n", q.Price, q.Currency)
	fmt.Fprintf(&b, "24h Change: %.2f%%\n", q.ChangePct)
	fmt.Fprintf(&b, "Previous Close: %.2f\n", q.PrevClose)
	if q.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", q.Source)
	}
	return b.String()
}

func buildAnalysisContext(webData, financeData, validation, date string) string {
	var b strings.Builder
	b.WriteString("Web Data: ")
	b.WriteString(webData)
	b.WriteString("\nFinance Data: ")
	b.WriteString(financeData)
	b.WriteString("\nValidation Notes: ")
	b.WriteString(validation)
	b.WriteString("\nCurrent Date: ")
	b.WriteString(date)
	return b.String()
}

func buildNewsContext(newsData, date string) string {
	var b strings.Builder
	b.WriteString("News Data: ")
	b.WriteString(newsData)
	b.WriteString("\nCurrent Date: ")
	b.WriteString(date)
	return b.String()
}

func buildTeamPrompt(query string, outputs []MemberOutput) string {
	var b strings.Builder
	b.WriteString("User Query:\n")
	b.WriteString(query)
	b.WriteString("\n\nAgent Reports:\n")
	for _, out := range outputs {
		b.WriteString("\n[")
		b.WriteString(out.Agent)
		b.WriteString("]\n")
		b.WriteString(out.Text)
		b.WriteString("\n")
	}
	b.WriteString("\nWrite the combined answer for the user.")
	return b.String()
}
