package config

import (
	"github.com/google/uuid"
	"os"
)

// DefaultServerURL is where the travel search MCP server listens when run
// with its stock configuration.
const DefaultServerURL = "http://localhost:8080/mcp"

type Config struct {
	ClientID       string // per-process identity, sent as X-Client-Id
	ServerURL      string
	ScanSecrets    bool   // scan outgoing tool arguments for leaked secrets
	GitleaksConfig string // optional custom ruleset path, empty means builtin
}

func NewConfig() *Config {
	return &Config{
		ClientID:       uuid.NewString(),
		ServerURL:      getEnv("TRAVELMCP_SERVER_URL", DefaultServerURL),
		ScanSecrets:    getEnv("TRAVELMCP_SCAN_SECRETS", "true") == "true",
		GitleaksConfig: getEnv("TRAVELMCP_GITLEAKS_CONFIG", ""),
	}
}

// Helper function to read environment variables with defaults
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
