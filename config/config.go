package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	DBPath        string
	JWTSecret     string
	TokenTTLHours int
	LLMEndpoint   string
	LLMAPIKey     string
	LLMModel      string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttl, err := strconv.Atoi(get("TOKEN_TTL_HOURS", "24"))
	if err != nil || ttl <= 0 {
		ttl = 24
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		DBPath:        get("DB_PATH", "mantrix.db"),
		JWTSecret:     get("JWT_SECRET", "dev-secret-change-in-production"),
		TokenTTLHours: ttl,
		LLMEndpoint:   get("LLM_ENDPOINT", ""),
		LLMAPIKey:     get("LLM_API_KEY", ""),
		LLMModel:      get("LLM_MODEL", "gpt-4o"),
	}
	log.Printf("[cfg] port=%s db=%s llm_model=%s", cfg.Port, cfg.DBPath, cfg.LLMModel)
	return cfg
}
