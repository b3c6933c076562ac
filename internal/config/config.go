package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

type Config struct {
	DatabaseURL string
	Port        string
	UploadsDir  string

	// LLM Configuration
	LLMProvider   string // "openai", "anthropic", or "none"
	LLMModel      string
	LLMAPIKey     string
	LLMTimeoutSec int
}

// Load reads configuration from the environment, consulting a .env file first.
// Missing values fall back to defaults; an absent DATABASE_URL is allowed and
// puts the store into in-memory mode.
func Load() *Config {
	// Best effort; plain environment variables win anyway.
	_ = godotenv.Load()

	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = ProviderOpenAI
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		switch provider {
		case ProviderAnthropic:
			model = "claude-haiku-4.5"
		default:
			model = "gpt-4o-mini"
		}
	}

	apiKey := ""
	switch provider {
	case ProviderOpenAI:
		apiKey = os.Getenv("OPENAI_API_KEY")
	case ProviderAnthropic:
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	timeout := 30
	if v := os.Getenv("LLM_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          port,
		UploadsDir:    uploadsDir,
		LLMProvider:   provider,
		LLMModel:      model,
		LLMAPIKey:     apiKey,
		LLMTimeoutSec: timeout,
	}
}
