package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type Config struct {
	Agent    AgentConfig    `json:"agent"`
	Server   ServerConfig   `json:"server"`
	Provider ProviderConfig `json:"provider"`
	Queue    QueueConfig    `json:"queue"`
	Trace    TraceConfig    `json:"trace"`
	Reminder ReminderConfig `json:"reminder"`
}

type AgentConfig struct {
	Name            string `json:"name"`
	DefaultLanguage string `json:"default_language"`
	RandomSeed      int64  `json:"random_seed"`
	CLIUserID       string `json:"cli_user_id"`
}

type ServerConfig struct {
	WSPort             int  `json:"ws_port"`
	HTTPPort           int  `json:"http_port"`
	EnableCLI          bool `json:"enable_cli"`
	TypingDelayMs      int  `json:"typing_delay_ms"`
	ShutdownTimeoutSec int  `json:"shutdown_timeout_sec"`
}

type ProviderConfig struct {
	APIKeyEnv  string `json:"api_key_env"`
	BaseURL    string `json:"base_url"`
	Model      string `json:"model"`
	TimeoutSec int    `json:"timeout_sec"`
}

type QueueConfig struct {
	Enabled           bool `json:"enabled"`
	Workers           int  `json:"workers"`
	Buffer            int  `json:"buffer"`
	MaxRetries        int  `json:"max_retries"`
	RetryDelayMs      int  `json:"retry_delay_ms"`
	AttemptTimeoutSec int  `json:"attempt_timeout_sec"`
	EnqueueTimeoutSec int  `json:"enqueue_timeout_sec"`
}

type TraceConfig struct {
	Enabled bool   `json:"enabled"`
	Dir     string `json:"dir"`
}

type ReminderConfig struct {
	MaxMinutes int `json:"max_minutes"`
}

type Manager struct {
	path string
	mu   sync.RWMutex
	cfg  Config
}

func DefaultPath() string {
	return filepath.Join("config", "config.json")
}

func NewManager(path string) (*Manager, error) {
	cfg := defaultConfig()
	mgr := &Manager{
		path: path,
		cfg:  cfg,
	}
	if err := mgr.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if err := mgr.save(); err != nil {
		return nil, err
	}
	return mgr, nil
}

func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

func (m *Manager) Update(apply func(*Config)) (Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	apply(&m.cfg)
	applyDefaults(&m.cfg)
	if err := m.saveLocked(); err != nil {
		return Config{}, err
	}
	return m.cfg, nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return err
	}
	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return err
	}
	m.cfg = fileCfg
	applyDefaults(&m.cfg)
	return nil
}

func (m *Manager) save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked()
}

func (m *Manager) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m.cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0644)
}

func defaultConfig() Config {
	return Config{
		Agent: AgentConfig{
			Name:            "Sahayak",
			DefaultLanguage: "english",
			CLIUserID:       "local_user",
		},
		Server: ServerConfig{
			WSPort:             8081,
			HTTPPort:           8080,
			TypingDelayMs:      1000,
			ShutdownTimeoutSec: 5,
		},
		Provider: ProviderConfig{
			APIKeyEnv:  "OPENAI_API_KEY",
			Model:      "gpt-4o-mini",
			TimeoutSec: 30,
		},
		Queue: QueueConfig{
			Workers:           4,
			Buffer:            64,
			MaxRetries:        1,
			RetryDelayMs:      200,
			AttemptTimeoutSec: 60,
			EnqueueTimeoutSec: 2,
		},
		Trace: TraceConfig{
			Dir: filepath.Join("data", "traces"),
		},
		Reminder: ReminderConfig{
			MaxMinutes: 1440,
		},
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Agent.Name) == "" {
		cfg.Agent.Name = "Sahayak"
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Agent.DefaultLanguage)) {
	case "english", "hindi":
		cfg.Agent.DefaultLanguage = strings.ToLower(strings.TrimSpace(cfg.Agent.DefaultLanguage))
	default:
		cfg.Agent.DefaultLanguage = "english"
	}
	if strings.TrimSpace(cfg.Agent.CLIUserID) == "" {
		cfg.Agent.CLIUserID = "local_user"
	}
	if cfg.Server.WSPort <= 0 {
		cfg.Server.WSPort = 8081
	}
	if cfg.Server.HTTPPort <= 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.TypingDelayMs < 0 {
		cfg.Server.TypingDelayMs = 0
	}
	if cfg.Server.ShutdownTimeoutSec <= 0 {
		cfg.Server.ShutdownTimeoutSec = 5
	}
	if strings.TrimSpace(cfg.Provider.APIKeyEnv) == "" {
		cfg.Provider.APIKeyEnv = "OPENAI_API_KEY"
	}
	if strings.TrimSpace(cfg.Provider.Model) == "" {
		cfg.Provider.Model = "gpt-4o-mini"
	}
	if cfg.Provider.TimeoutSec <= 0 {
		cfg.Provider.TimeoutSec = 30
	}
	if cfg.Queue.Workers <= 0 {
		cfg.Queue.Workers = 4
	}
	if cfg.Queue.Buffer <= 0 {
		cfg.Queue.Buffer = 64
	}
	if cfg.Queue.MaxRetries < 0 {
		cfg.Queue.MaxRetries = 0
	}
	if cfg.Queue.RetryDelayMs < 0 {
		cfg.Queue.RetryDelayMs = 0
	}
	if cfg.Queue.AttemptTimeoutSec <= 0 {
		cfg.Queue.AttemptTimeoutSec = 60
	}
	if cfg.Queue.EnqueueTimeoutSec < 0 {
		cfg.Queue.EnqueueTimeoutSec = 0
	}
	if strings.TrimSpace(cfg.Trace.Dir) == "" {
		cfg.Trace.Dir = filepath.Join("data", "traces")
	}
	if cfg.Reminder.MaxMinutes <= 0 {
		cfg.Reminder.MaxMinutes = 1440
	}
}
