package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Algolia: AlgoliaConfig{AppID: "TESTAPP", APIKey: "test-key"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_MissingAppID(t *testing.T) {
	cfg := validConfig()
	cfg.Algolia.AppID = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing algolia.app_id")
	}
	if err.Error() != "algolia.app_id is required" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Algolia.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing algolia.api_key")
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for port 0")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Pills.Threshold != 50 {
		t.Errorf("default threshold = %d, want 50", cfg.Pills.Threshold)
	}
	if cfg.Pills.SampleSize != 100 {
		t.Errorf("default sample size = %d, want 100", cfg.Pills.SampleSize)
	}
	if cfg.Cache.QueryTTLSec != 1800 {
		t.Errorf("default query TTL = %d, want 1800", cfg.Cache.QueryTTLSec)
	}
	if cfg.Cache.DefaultTTLSec != 3600 {
		t.Errorf("default catalogue TTL = %d, want 3600", cfg.Cache.DefaultTTLSec)
	}
	if cfg.Algolia.Index != "prod_item_state_v1" {
		t.Errorf("default index = %q", cfg.Algolia.Index)
	}
	if cfg.Cache.Enabled() {
		t.Error("cache should be disabled with no addrs")
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("SMARTPILLS_TEST_VAR", "hello")
	defer os.Unsetenv("SMARTPILLS_TEST_VAR")

	tests := []struct {
		in   string
		want string
	}{
		{"key: ${SMARTPILLS_TEST_VAR}", "key: hello"},
		{"key: ${SMARTPILLS_TEST_UNSET:-fallback}", "key: fallback"},
		{"key: plain", "key: plain"},
	}

	for _, tt := range tests {
		got := string(expandEnvVars([]byte(tt.in)))
		if got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
