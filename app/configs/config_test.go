package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewManagerWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager failed: %v", err)
	}

	cfg := mgr.Get()
	if cfg.Agent.Name != "Sahayak" {
		t.Fatalf("unexpected default agent name: %s", cfg.Agent.Name)
	}
	if cfg.Agent.DefaultLanguage != "english" {
		t.Fatalf("unexpected default language: %s", cfg.Agent.DefaultLanguage)
	}
	if cfg.Server.WSPort != 8081 || cfg.Server.HTTPPort != 8080 {
		t.Fatalf("unexpected default ports: %+v", cfg.Server)
	}
	if cfg.Provider.APIKeyEnv != "OPENAI_API_KEY" {
		t.Fatalf("unexpected api key env: %s", cfg.Provider.APIKeyEnv)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file should be created: %v", err)
	}
}

func TestLoadExistingConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"agent":{"name":"Custom","default_language":"hindi"},"server":{"ws_port":9001}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager failed: %v", err)
	}

	cfg := mgr.Get()
	if cfg.Agent.Name != "Custom" {
		t.Fatalf("file value should win: %s", cfg.Agent.Name)
	}
	if cfg.Agent.DefaultLanguage != "hindi" {
		t.Fatalf("file language should win: %s", cfg.Agent.DefaultLanguage)
	}
	if cfg.Server.WSPort != 9001 {
		t.Fatalf("file port should win: %d", cfg.Server.WSPort)
	}
	if cfg.Server.HTTPPort != 8080 {
		t.Fatalf("missing values should get defaults: %d", cfg.Server.HTTPPort)
	}
}

func TestApplyDefaultsSanitizesValues(t *testing.T) {
	cfg := Config{}
	cfg.Agent.DefaultLanguage = "klingon"
	cfg.Server.TypingDelayMs = -100
	cfg.Queue.MaxRetries = -1
	applyDefaults(&cfg)

	if cfg.Agent.DefaultLanguage != "english" {
		t.Fatalf("unsupported language should fall back: %s", cfg.Agent.DefaultLanguage)
	}
	if cfg.Server.TypingDelayMs != 0 {
		t.Fatalf("negative typing delay should clamp to zero: %d", cfg.Server.TypingDelayMs)
	}
	if cfg.Queue.MaxRetries != 0 {
		t.Fatalf("negative retries should clamp to zero: %d", cfg.Queue.MaxRetries)
	}
	if cfg.Provider.TimeoutSec != 30 {
		t.Fatalf("provider timeout should default: %d", cfg.Provider.TimeoutSec)
	}
}

func TestUpdatePersistsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager failed: %v", err)
	}

	updated, err := mgr.Update(func(c *Config) {
		c.Queue.Enabled = true
		c.Queue.Workers = 8
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Queue.Enabled || updated.Queue.Workers != 8 {
		t.Fatalf("update not applied: %+v", updated.Queue)
	}

	reloaded, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.Queue.Enabled || reloaded.Queue.Workers != 8 {
		t.Fatalf("update not persisted: %+v", reloaded.Queue)
	}
}
