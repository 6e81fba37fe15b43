package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultAPIHostname  = "https://api.appcircle.io"
	DefaultAuthHostname = "https://auth.appcircle.io"

	// DefaultEnvName is the environment created on first run.
	DefaultEnvName = "default"

	configDir  = ".appcircle"
	configFile = "config.json"
)

// Environment holds the connection settings and credentials for one named
// Appcircle environment. Key names follow the config file format of the
// original CLI so existing config files keep working.
type Environment struct {
	APIHostname  string `json:"API_HOSTNAME"`
	AuthHostname string `json:"AUTH_HOSTNAME"`
	AccessToken  string `json:"AC_ACCESS_TOKEN,omitempty"`
}

// Config is the persisted state under ~/.appcircle/config.json: a set of
// named environments and the name of the active one.
type Config struct {
	Current string                  `json:"current"`
	Envs    map[string]*Environment `json:"envs"`
}

// CurrentEnv returns the active environment, creating an empty entry when the
// selector points at an environment that does not exist yet.
func (c *Config) CurrentEnv() *Environment {
	if c.Envs == nil {
		c.Envs = map[string]*Environment{}
	}
	env, ok := c.Envs[c.Current]
	if !ok {
		env = &Environment{
			APIHostname:  DefaultAPIHostname,
			AuthHostname: DefaultAuthHostname,
		}
		c.Envs[c.Current] = env
	}
	return env
}

// Manager reads and writes the config file.
type Manager struct {
	path string
}

func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return &Manager{path: filepath.Join(homeDir, configDir, configFile)}, nil
}

// NewManagerAt returns a Manager bound to an explicit file path.
func NewManagerAt(path string) *Manager {
	return &Manager{path: path}
}

func (m *Manager) Path() string {
	return m.path
}

func defaultConfig() *Config {
	return &Config{
		Current: DefaultEnvName,
		Envs: map[string]*Environment{
			DefaultEnvName: {
				APIHostname:  DefaultAPIHostname,
				AuthHostname: DefaultAuthHostname,
			},
		},
	}
}

// Load reads the config file, creating it with defaults when missing.
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := m.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", m.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", m.path, err)
	}
	if cfg.Current == "" {
		cfg.Current = DefaultEnvName
	}
	if cfg.Envs == nil {
		cfg.Envs = map[string]*Environment{}
	}
	return &cfg, nil
}

func (m *Manager) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", m.path, err)
	}
	return nil
}

// Reset overwrites the config file with defaults.
func (m *Manager) Reset() error {
	return m.Save(defaultConfig())
}
