package config

import (
	"log"
	"os"
	"path/filepath"
)

type Config struct {
	Port string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	ChatModel     string
	SummaryModel  string

	StorageBackend string // "diskv" or "memory"
	DataPath       string

	UseMockLLM bool // true = use mock even when an API key is set
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindtext.db"
	}
	return filepath.Join(home, ".mindtext.db")
}

// Load reads all env vars and builds the config
func Load() *Config {
	apiKey := getEnv("MINDTEXT_OPENAI_API_KEY", os.Getenv("OPENAI_API_KEY"))

	cfg := &Config{
		Port: getEnv("MINDTEXT_PORT", "8080"),

		OpenAIAPIKey:  apiKey,
		OpenAIBaseURL: getEnv("MINDTEXT_OPENAI_BASE_URL", ""),
		ChatModel:     getEnv("MINDTEXT_CHAT_MODEL", "gpt-4o-mini"),
		SummaryModel:  getEnv("MINDTEXT_SUMMARY_MODEL", "gpt-4o-mini"),

		StorageBackend: getEnv("MINDTEXT_STORAGE_BACKEND", "diskv"),
		DataPath:       getEnv("MINDTEXT_DATA_PATH", defaultDataPath()),

		UseMockLLM: getBoolEnv("MINDTEXT_USE_MOCK_LLM", apiKey == ""),
	}

	// Minimal validation: a real LLM needs a key.
	if !cfg.UseMockLLM && cfg.OpenAIAPIKey == "" {
		log.Fatal("MINDTEXT_OPENAI_API_KEY must be set when the mock LLM is disabled")
	}

	return cfg
}
