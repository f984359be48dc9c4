package config

import (
	"os"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 0},
		Corpus: CorpusConfig{Path: "data/actas.json"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingCorpusPath(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing corpus path")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Corpus: CorpusConfig{Path: "data/actas.json"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Narrative.Provider != "openai" {
		t.Errorf("expected Provider='openai', got %q", cfg.Narrative.Provider)
	}
	if cfg.Narrative.Model != "gpt-4o-mini" {
		t.Errorf("expected Model='gpt-4o-mini', got %q", cfg.Narrative.Model)
	}
	if cfg.Narrative.CacheTTLSec != 86400 {
		t.Errorf("expected CacheTTLSec=86400, got %d", cfg.Narrative.CacheTTLSec)
	}
	if cfg.Cache.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Cache.ReadinessTimeout)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Narrative: NarrativeConfig{Provider: "nebius", Model: "llama-3.3-70b", CacheTTLSec: 600},
		Cache:     CacheConfig{ReadinessTimeout: 15},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Narrative.Provider != "nebius" {
		t.Errorf("expected Provider='nebius', got %q", cfg.Narrative.Provider)
	}
	if cfg.Narrative.Model != "llama-3.3-70b" {
		t.Errorf("expected Model='llama-3.3-70b', got %q", cfg.Narrative.Model)
	}
	if cfg.Cache.ReadinessTimeout != 15 {
		t.Errorf("expected ReadinessTimeout=15, got %d", cfg.Cache.ReadinessTimeout)
	}
}

func TestNarrativeEnabled(t *testing.T) {
	cfg := Config{}
	if cfg.NarrativeEnabled() {
		t.Error("narration must be disabled without an api key")
	}

	cfg.Narrative.APIKey = "sk-test"
	if !cfg.NarrativeEnabled() {
		t.Error("narration must be enabled with an api key")
	}
}

func TestCacheEnabled(t *testing.T) {
	cfg := Config{}
	if cfg.CacheEnabled() {
		t.Error("cache must be disabled without addrs")
	}

	cfg.Cache.Addrs = []string{"localhost:6379"}
	if !cfg.CacheEnabled() {
		t.Error("cache must be enabled with addrs")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("ACTADEX_TEST_KEY", "secret")
	os.Unsetenv("ACTADEX_TEST_MISSING")

	in := []byte("api_key: ${ACTADEX_TEST_KEY}\nmodel: ${ACTADEX_TEST_MISSING:-gpt-4o-mini}\n")
	out := string(expandEnvVars(in))

	want := "api_key: secret\nmodel: gpt-4o-mini\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
