// Package config holds the explicit configuration object constructed
// once at process start. Components receive it as a value; nothing reads
// environment state after Load returns.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Server struct {
	Addr              string `json:"addr"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type LLM struct {
	// Provider selects the model backend: openai, groq, or anthropic.
	Provider        string  `json:"provider"`
	Model           string  `json:"model"`
	BaseURL         string  `json:"base_url"`
	Temperature     float64 `json:"temperature"`
	OpenAIAPIKey    string  `json:"openai_api_key"`
	GroqAPIKey      string  `json:"groq_api_key"`
	AnthropicAPIKey string  `json:"anthropic_api_key"`
}

type Search struct {
	// Provider selects the search backend: duckduckgo, tavily, or brave.
	Provider     string `json:"provider"`
	TavilyAPIKey string `json:"tavily_api_key"`
	BraveAPIKey  string `json:"brave_api_key"`
}

type Config struct {
	Server Server `json:"server"`
	LLM    LLM    `json:"llm"`
	Search Search `json:"search"`
}

func Default() Config {
	return Config{
		Server: Server{Addr: ":8080", RequestTimeoutSec: 120},
		LLM: LLM{
			Provider:    "groq",
			Model:       "llama-3.3-70b-versatile",
			Temperature: 0.1,
		},
		Search: Search{Provider: "duckduckgo"},
	}
}

// Load reads JSON config from path. If path is empty or the file does
// not exist, defaults are used. A .env file in the working directory and
// environment variables override file values, so secrets stay out of the
// config file.
func Load(path string) (Config, error) {
	cfg := Default()
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FINAGENT_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("FINAGENT_REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("FINAGENT_PROVIDER"); v != "" {
		cfg.LLM.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("FINAGENT_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("FINAGENT_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.OpenAIAPIKey = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.LLM.GroqAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.LLM.AnthropicAPIKey = v
	}
	if v := os.Getenv("FINAGENT_SEARCH"); v != "" {
		cfg.Search.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("TAVILY_API_KEY"); v != "" {
		cfg.Search.TavilyAPIKey = v
	}
	if v := os.Getenv("BRAVE_API_KEY"); v != "" {
		cfg.Search.BraveAPIKey = v
	}
}

// ModelKey returns the API key for the selected LLM provider.
func (c Config) ModelKey() string {
	switch c.LLM.Provider {
	case "anthropic":
		return c.LLM.AnthropicAPIKey
	case "groq":
		return c.LLM.GroqAPIKey
	default:
		return c.LLM.OpenAIAPIKey
	}
}

// Warnings returns user-visible configuration problems. Missing keys are
// surfaced on the page rather than crashing the process.
func (c Config) Warnings() []string {
	var warnings []string
	if c.ModelKey() == "" {
		warnings = append(warnings, fmt.Sprintf("API key missing for LLM provider %q. Check your environment variables.", c.LLM.Provider))
	}
	switch c.Search.Provider {
	case "tavily":
		if c.Search.TavilyAPIKey == "" {
			warnings = append(warnings, "TAVILY_API_KEY is not set; web search will fail.")
		}
	case "brave":
		if c.Search.BraveAPIKey == "" {
			warnings = append(warnings, "BRAVE_API_KEY is not set; web search will fail.")
		}
	}
	return warnings
}
