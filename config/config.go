package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the agent daemon's runtime configuration, loaded from a yaml
// file with environment overrides for the deployment-specific values.
type Config struct {
	BackendURL    string `yaml:"backend_url"`
	AuthToken     string `yaml:"auth_token"`
	FuncionarioID int    `yaml:"funcionario_id"`

	// StoragePath is the sqlite file holding queues and cache. Empty
	// means in-memory only.
	StoragePath string `yaml:"storage_path"`

	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	CacheTTLMinutes     int `yaml:"cache_ttl_minutes"`
}

func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	if c.CacheTTLMinutes <= 0 {
		return 60 * time.Minute
	}
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

var (
	once    sync.Once
	loaded  *Config
	loadErr error
)

// Load reads the configuration file once and caches it. A missing file
// is not an error when the required values arrive via environment.
func Load(path string) (*Config, error) {
	once.Do(func() {
		loaded, loadErr = parse(path)
	})
	return loaded, loadErr
}

func parse(path string) (*Config, error) {
	cfg := &Config{}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnv(cfg)

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("backend_url is required (config file or PONTOSYNC_BACKEND_URL)")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PONTOSYNC_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("PONTOSYNC_AUTH_TOKEN"); v != "" {
		cfg.AuthToken = v
	}
	if v := os.Getenv("PONTOSYNC_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("PONTOSYNC_FUNCIONARIO_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			cfg.FuncionarioID = id
		}
	}
}
