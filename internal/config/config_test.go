package config

import (
	"os"
	"testing"
)

// unsetenv clears key for the duration of the test, restoring it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestNewConfigDefaults(t *testing.T) {
	unsetenv(t, "TRAVELMCP_SERVER_URL")
	unsetenv(t, "TRAVELMCP_SCAN_SECRETS")
	unsetenv(t, "TRAVELMCP_GITLEAKS_CONFIG")

	cfg := NewConfig()

	if cfg.ServerURL != "http://localhost:8080/mcp" {
		t.Errorf("expected default server url, got %q", cfg.ServerURL)
	}
	if !cfg.ScanSecrets {
		t.Error("expected secret scanning on by default")
	}
	if cfg.GitleaksConfig != "" {
		t.Errorf("expected no gitleaks config path, got %q", cfg.GitleaksConfig)
	}
	if cfg.ClientID == "" {
		t.Error("expected a client id to be minted")
	}
	if NewConfig().ClientID == cfg.ClientID {
		t.Error("expected a fresh client id per config")
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("TRAVELMCP_SERVER_URL", "http://search.internal:9090/mcp")
	t.Setenv("TRAVELMCP_SCAN_SECRETS", "false")
	t.Setenv("TRAVELMCP_GITLEAKS_CONFIG", "/etc/travelmcp/gitleaks.toml")

	cfg := NewConfig()

	if cfg.ServerURL != "http://search.internal:9090/mcp" {
		t.Errorf("unexpected server url: %q", cfg.ServerURL)
	}
	if cfg.ScanSecrets {
		t.Error("expected secret scanning to be disabled")
	}
	if cfg.GitleaksConfig != "/etc/travelmcp/gitleaks.toml" {
		t.Errorf("unexpected gitleaks config path: %q", cfg.GitleaksConfig)
	}
}
