// Package config holds trustlens configuration: the Gemini engine settings,
// pipeline tuning, and logging controls. Config is loaded from a YAML file
// with environment-variable overrides for deployment secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all trustlens configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Gemini   GeminiConfig   `yaml:"gemini"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GeminiConfig configures the reasoning-engine client.
type GeminiConfig struct {
	APIKey          string `yaml:"api_key"`
	Model           string `yaml:"model"`
	Timeout         string `yaml:"timeout"`
	MaxOutputTokens int32  `yaml:"max_output_tokens"`
}

// PipelineConfig tunes the verification pipeline.
type PipelineConfig struct {
	// AttemptTimeout bounds each of the two engine attempts. The upstream
	// behavior left this open; it is a config parameter, not a constant.
	AttemptTimeout string `yaml:"attempt_timeout"`
}

// LoggingConfig controls the categorized debug logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Name:    "trustlens",
		Version: "0.1.0",
		Gemini: GeminiConfig{
			Model:           "gemini-2.5-flash",
			Timeout:         "2m",
			MaxOutputTokens: 16384,
		},
		Pipeline: PipelineConfig{
			AttemptTimeout: "90s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, layering file values over defaults
// and environment overrides over both. A missing file is not an error;
// defaults plus environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets deployment environments supply secrets and tuning
// without editing the config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("TRUSTLENS_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("TRUSTLENS_ATTEMPT_TIMEOUT"); v != "" {
		cfg.Pipeline.AttemptTimeout = v
	}
}

// GeminiTimeout parses the engine call timeout, falling back to the default
// on a malformed value.
func (c *Config) GeminiTimeout() time.Duration {
	return parseDuration(c.Gemini.Timeout, 2*time.Minute)
}

// AttemptTimeout parses the per-attempt pipeline timeout.
func (c *Config) AttemptTimeout() time.Duration {
	return parseDuration(c.Pipeline.AttemptTimeout, 90*time.Second)
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
