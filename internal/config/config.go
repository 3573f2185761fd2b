// Package config holds tool configuration loaded from a YAML file. Only the
// CLI reads this; the core engine packages take explicit arguments so their
// behavior is fully determined by manifest plus inputs.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the probelab tool configuration.
type Config struct {
	// Generation backend: "openai" (any OpenAI-compatible endpoint),
	// "gemini", or "scripted" for dry runs.
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key; keys
	// never live in the config file itself.
	APIKeyEnv string `yaml:"api_key_env"`

	Timeout     string `yaml:"timeout"`
	MaxTokens   int    `yaml:"max_tokens"`
	Concurrency int    `yaml:"concurrency"`

	ExperimentsDir string `yaml:"experiments_dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Provider:       "openai",
		Model:          "gpt-4o-mini",
		APIKeyEnv:      "OPENAI_API_KEY",
		Timeout:        "120s",
		MaxTokens:      300,
		Concurrency:    1,
		ExperimentsDir: "experiments",
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GenTimeout parses the generation timeout, defaulting to two minutes on a
// missing or malformed value.
func (c *Config) GenTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 120 * time.Second
	}
	return d
}

// APIKey resolves the API key from the configured environment variable.
func (c *Config) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}
