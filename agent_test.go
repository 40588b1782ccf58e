package finagent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoModel records the prompts it receives and replies with a canned
// response.
type echoModel struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (m *echoModel) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	return m.reply, m.err
}

type fakeSearch struct {
	results []SearchResult
	err     error
}

func (f fakeSearch) Search(_ context.Context, _ string) ([]SearchResult, error) {
	return f.results, f.err
}

type fakeQuoter struct {
	quote Quote
	err   error
}

func (f fakeQuoter) Quote(_ context.Context, _ string) (Quote, error) {
	return f.quote, f.err
}

func fixedClock() time.Time {
	return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
}

func TestAgentSearchContextReachesModel(t *testing.T) {
	m := &echoModel{reply: "some news"}
	agent := NewAgent("Web Search Agent", m,
		WithSearch(fakeSearch{results: []SearchResult{
			{Title: "Apple earnings", URL: "https://example.com/a", Snippet: "record quarter"},
		}}),
		WithInstructions(WebSearchInstructions),
	)

	out, err := agent.Run(context.Background(), "AAPL earnings")
	require.NoError(t, err)
	assert.Equal(t, "some news", out)
	assert.Contains(t, m.lastUser, "Apple earnings")
	assert.Contains(t, m.lastUser, "https://example.com/a")
	assert.Contains(t, m.lastSystem, "web researcher")
}

func TestAgentQuoteContextReachesModel(t *testing.T) {
	m := &echoModel{reply: "STOCK: AAPL | PRICE: $172.50 | CHANGE: 0.80%"}
	agent := NewAgent("Finance Agent", m,
		WithQuote(fakeQuoter{quote: Quote{Symbol: "AAPL", Price: 172.5, Currency: "USD", ChangePct: 0.8, PrevClose: 171.1}}),
		WithInstructions(FinanceInstructions),
	)

	out, err := agent.Run(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Contains(t, out, "PRICE: $172.50")
	assert.Contains(t, m.lastUser, "Get price for AAPL")
	assert.Contains(t, m.lastUser, "Price: 172.50 USD")
}

func TestAgentCapabilityErrorPropagates(t *testing.T) {
	agent := NewAgent("Web Search Agent", &echoModel{},
		WithSearch(fakeSearch{err: errors.New("boom")}),
	)
	_, err := agent.Run(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search")
}

func TestAgentDateAndMarkdownFlags(t *testing.T) {
	m := &echoModel{reply: "ok"}
	agent := NewAgent("Team Agent", m,
		WithInstructions(AnalysisTeamInstructions),
		WithMarkdown(),
		WithCurrentDate(),
		WithClock(fixedClock),
	)

	_, err := agent.Run(context.Background(), "context here")
	require.NoError(t, err)
	assert.Contains(t, m.lastSystem, "markdown")
	assert.Contains(t, m.lastSystem, "2026-08-31")
	assert.Equal(t, "context here", m.lastUser)
}

func TestAgentEmptyTask(t *testing.T) {
	agent := NewAgent("Team Agent", &echoModel{})
	_, err := agent.Run(context.Background(), "   ")
	assert.Error(t, err)
}

// scriptedRunner returns canned outputs keyed by call order.
type scriptedRunner struct {
	name    string
	replies []string
	err     error
	calls   int
	tasks   []string
}

func (r *scriptedRunner) Name() string { return r.name }

func (r *scriptedRunner) Run(_ context.Context, task string) (string, error) {
	r.tasks = append(r.tasks, task)
	if r.err != nil {
		return "", r.err
	}
	i := r.calls
	r.calls++
	if i >= len(r.replies) {
		return "", errors.New("no scripted reply available")
	}
	return r.replies[i], nil
}

func TestTeamEmbedsMemberOutputs(t *testing.T) {
	web := &scriptedRunner{name: "Web Search Agent", replies: []string{"web findings"}}
	finance := &scriptedRunner{name: "Finance Agent", replies: []string{"finance findings"}}
	leader := &scriptedRunner{name: "Financer Team", replies: []string{"combined answer"}}

	team := NewTeam("Financer Team", leader, web, finance)
	out, err := team.Run(context.Background(), "TSLA analysis")
	require.NoError(t, err)
	assert.Equal(t, "combined answer", out)

	require.Len(t, leader.tasks, 1)
	assert.Contains(t, leader.tasks[0], "TSLA analysis")
	assert.Contains(t, leader.tasks[0], "[Web Search Agent]\nweb findings")
	assert.Contains(t, leader.tasks[0], "[Finance Agent]\nfinance findings")
}

func TestTeamFailingMemberBecomesSentinel(t *testing.T) {
	web := &scriptedRunner{name: "Web Search Agent", err: errors.New("down")}
	leader := &scriptedRunner{name: "Financer Team", replies: []string{"answer"}}

	team := NewTeam("Financer Team", leader, web)
	_, err := team.Run(context.Background(), "query")
	require.NoError(t, err)
	assert.Contains(t, leader.tasks[0], SentinelNoData)
}
