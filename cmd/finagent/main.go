// Command finagent serves the financial research form: a single query
// box whose submissions run through the retrieval and synthesis pipeline.
package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/marketwatch/finagent"
	"github.com/marketwatch/finagent/internal/config"
	"github.com/marketwatch/finagent/model"
	"github.com/marketwatch/finagent/quote"
	"github.com/marketwatch/finagent/search"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	e := newServer(buildPipeline(cfg, log), cfg, log)
	log.WithFields(logrus.Fields{
		"addr":     cfg.Server.Addr,
		"provider": cfg.LLM.Provider,
		"model":    cfg.LLM.Model,
		"search":   cfg.Search.Provider,
	}).Info("finagent listening")
	if err := e.Start(cfg.Server.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func buildPipeline(cfg config.Config, log *logrus.Logger) *finagent.Pipeline {
	llm := buildModel(cfg)
	searcher := buildSearcher(cfg)

	webAgent := finagent.NewAgent("Web Search Agent", llm,
		finagent.WithSearch(searcher),
		finagent.WithInstructions(finagent.WebSearchInstructions),
		finagent.WithMarkdown(),
		finagent.WithCurrentDate(),
	)
	financeAgent := finagent.NewAgent("Finance Agent", llm,
		finagent.WithQuote(quote.NewYahoo()),
		finagent.WithInstructions(finagent.FinanceInstructions),
		finagent.WithCurrentDate(),
	)
	analyst := finagent.NewAgent("Team Agent", llm,
		finagent.WithInstructions(finagent.AnalysisTeamInstructions),
		finagent.WithMarkdown(),
		finagent.WithCurrentDate(),
	)
	reporter := finagent.NewAgent("News Team Agent", llm,
		finagent.WithInstructions(finagent.NewsTeamInstructions),
		finagent.WithMarkdown(),
		finagent.WithCurrentDate(),
	)

	return finagent.NewPipeline(webAgent, financeAgent, analyst, reporter,
		finagent.WithLogger(log))
}

func buildModel(cfg config.Config) finagent.ModelProvider {
	switch cfg.LLM.Provider {
	case "anthropic":
		return model.NewAnthropic(cfg.LLM.AnthropicAPIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Temperature)
	case "groq":
		base := cfg.LLM.BaseURL
		if base == "" {
			base = "https://api.groq.com/openai/v1"
		}
		return model.NewOpenAI(cfg.LLM.GroqAPIKey, base, cfg.LLM.Model, float32(cfg.LLM.Temperature))
	default:
		return model.NewOpenAI(cfg.LLM.OpenAIAPIKey, cfg.LLM.BaseURL, cfg.LLM.Model, float32(cfg.LLM.Temperature))
	}
}

func buildSearcher(cfg config.Config) finagent.SearchProvider {
	switch cfg.Search.Provider {
	case "tavily":
		return search.NewTavily(cfg.Search.TavilyAPIKey, "")
	case "brave":
		return search.NewBrave(cfg.Search.BraveAPIKey)
	default:
		return search.NewDuckDuckGo()
	}
}
