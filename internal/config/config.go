// Package config loads the runtime configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/hidden-1992/ai-healthy-menu/internal/llm"
)

// Config is the explicit configuration handed to the service at startup.
// There is no ambient mutable global; the dispatcher receives Provider as-is.
type Config struct {
	Port     string
	DBPath   string
	Provider llm.Config
}

// Load reads the environment. Missing values fall back to the defaults the
// service shipped with; only the API key has no default.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	cfg := Config{
		Port:   getenv("PORT", "3000"),
		DBPath: getenv("DB_PATH", "./healthy_menu.db"),
		Provider: llm.Config{
			APIKey:      os.Getenv("OPENROUTER_API_KEY"),
			Model:       getenv("OPENROUTER_MODEL", "google/gemini-2.0-flash-001"),
			MaxTokens:   getenvInt("OPENROUTER_MAX_TOKENS", 4096),
			Temperature: getenvFloat("OPENROUTER_TEMPERATURE", 0.7),
			BaseURL:     os.Getenv("OPENROUTER_BASE_URL"),
			Referer:     getenv("APP_REFERER", "https://huishi-ai.vercel.app"),
			Title:       getenv("APP_TITLE", "HuiShi AI"),
		},
	}

	if cfg.Provider.APIKey == "" {
		log.Warn().Msg("OPENROUTER_API_KEY is not set; analysis requests will fail")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in environment, using default")
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Warn().Str("key", key).Str("value", v).Msg("invalid float in environment, using default")
	}
	return fallback
}
