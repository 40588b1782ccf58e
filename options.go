package finagent

import "time"

// AgentOption configures an Agent.
type AgentOption func(*Agent)

// WithSearch binds a web-search capability to the agent.
func WithSearch(s SearchProvider) AgentOption {
	return func(a *Agent) { a.searcher = s }
}

// WithQuote binds a financial-quote capability to the agent.
func WithQuote(q QuoteProvider) AgentOption {
	return func(a *Agent) { a.quoter = q }
}

// WithInstructions sets the agent's instruction template.
func WithInstructions(text string) AgentOption {
	return func(a *Agent) { a.instructions = text }
}

// WithMarkdown asks the model to format its response as markdown.
func WithMarkdown() AgentOption {
	return func(a *Agent) { a.markdown = true }
}

// WithCurrentDate appends the current date to the agent's instructions.
func WithCurrentDate() AgentOption {
	return func(a *Agent) { a.addDate = true }
}

// WithClock overrides the time source used for the date line. Tests use
// this to pin the date.
func WithClock(now func() time.Time) AgentOption {
	return func(a *Agent) {
		if now != nil {
			a.now = now
		}
	}
}
