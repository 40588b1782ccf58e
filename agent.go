package finagent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Agent is a configured model call bound to at most one data capability
// (web search or financial quote) and an instruction template. Agents hold
// no per-request state and may be shared or rebuilt per request.
type Agent struct {
	name         string
	model        ModelProvider
	searcher     SearchProvider
	quoter       QuoteProvider
	instructions string
	markdown     bool
	addDate      bool
	now          func() time.Time
}

// NewAgent constructs an agent with optional configuration.
func NewAgent(name string, model ModelProvider, opts ...AgentOption) *Agent {
	a := &Agent{
		name:  name,
		model: model,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the agent's configured name.
func (a *Agent) Name() string { return a.name }

// Run gathers the agent's capability output for the task, then asks the
// model to render it under the agent's instructions. For a quote-backed
// agent the task is the resolved market symbol; for a search-backed agent
// it is the query text; for a plain synthesis agent it is the full prompt
// context. Capability and model errors propagate to the caller.
func (a *Agent) Run(ctx context.Context, task string) (string, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return "", errors.New("task is empty")
	}
	if a.model == nil {
		return "", fmt.Errorf("agent %s: model is not configured", a.name)
	}

	user := task
	switch {
	case a.quoter != nil:
		q, err := a.quoter.Quote(ctx, task)
		if err != nil {
			return "", fmt.Errorf("quote: %w", err)
		}
		user = buildQuotePrompt(task, q)
	case a.searcher != nil:
		results, err := a.searcher.Search(ctx, task)
		if err != nil {
			return "", fmt.Errorf("search: %w", err)
		}
		user = buildSearchPrompt(task, results)
	}

	text, err := a.model.Generate(ctx, a.systemPrompt(), user)
	if err != nil {
		return "", fmt.Errorf("model: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (a *Agent) systemPrompt() string {
	var b strings.Builder
	b.WriteString(a.instructions)
	if a.markdown {
		b.WriteString("\n\nFormat your entire response as markdown.")
	}
	if a.addDate {
		b.WriteString("\n\nThe current date is ")
		b.WriteString(a.now().Format("2006-01-02"))
		b.WriteString(".")
	}
	return b.String()
}

// Team is a leader agent whose prompt incorporates the textual outputs of
// its member agents, used as a final synthesis step.
type Team struct {
	name    string
	leader  Runner
	members []Runner
}

// NewTeam constructs a team from a leader and its members.
func NewTeam(name string, leader Runner, members ...Runner) *Team {
	return &Team{name: name, leader: leader, members: members}
}

// Name returns the team's configured name.
func (t *Team) Name() string { return t.name }

// Run forwards the query to each member in order, then hands the collected
// outputs to the leader for synthesis. A failing member contributes the
// no-data sentinel instead of aborting the round.
func (t *Team) Run(ctx context.Context, query string) (string, error) {
	if t.leader == nil {
		return "", errors.New("team leader is not configured")
	}
	outputs := make([]MemberOutput, 0, len(t.members))
	for _, m := range t.members {
		text, err := m.Run(ctx, query)
		if err != nil || strings.TrimSpace(text) == "" {
			text = SentinelNoData
		}
		outputs = append(outputs, MemberOutput{Agent: m.Name(), Text: text})
	}
	return t.leader.Run(ctx, buildTeamPrompt(query, outputs))
}

// MemberOutput pairs a member agent's name with the text it produced.
type MemberOutput struct {
	Agent string
	Text  string
}
