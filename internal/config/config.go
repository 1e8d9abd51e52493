// Package config loads the process-wide Config: YAML defaults overridden
// by environment variables, and the zerolog.Logger every other package
// logs recovered errors through.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the top-level, YAML-tagged configuration struct.
type Config struct {
	SetupsRoot         string        `yaml:"setups_root"`
	EnableDebugLogging bool          `yaml:"enable_debug_logging"`
	BehaviorID         string        `yaml:"behavior_id"`
	Logging            LoggingConfig `yaml:"logging"`
	History            HistoryConfig `yaml:"history"`
	Advisor            AdvisorConfig `yaml:"advisor"`
}

// LoggingConfig controls the zerolog.Logger built by NewLogger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Pretty bool   `yaml:"pretty"` // human-readable console writer vs JSON
}

// HistoryConfig controls internal/history's JSON-backed best-lap store.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// AdvisorConfig controls the optional Gemini-backed setup narrator.
type AdvisorConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Model          string        `yaml:"model"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// APIKey is never read from YAML; it is sourced from GOOGLE_API_KEY or
	// GEMINI_API_KEY at load time, same precedence as strategy.LoadConfig.
	APIKey string `yaml:"-"`
}

// DefaultConfig returns sensible defaults, applied before any YAML file or
// environment override is read.
func DefaultConfig() *Config {
	return &Config{
		SetupsRoot:         "",
		EnableDebugLogging: false,
		BehaviorID:         "balanced",
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
		History: HistoryConfig{
			Path: "setupgen_history.json",
		},
		Advisor: AdvisorConfig{
			Enabled:        false,
			Model:          "gemini-2.0-flash",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// Load reads config from a YAML file, falling back to defaults if the
// file is absent or unreadable, then applies environment overrides. A
// file that is read but fails to parse as YAML is returned as an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides mirrors strategy.LoadConfig's environment-variable
// precedence: the API key is only ever sourced from the environment, and
// a handful of operational settings read from YAML are replaced by their
// environment variable when that variable is set.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SETUPGEN_SETUPS_ROOT"); v != "" {
		c.SetupsRoot = v
	}
	if v := os.Getenv("SETUPGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SETUPGEN_DEBUG"); v != "" {
		c.EnableDebugLogging = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("SETUPGEN_BEHAVIOR_ID"); v != "" {
		c.BehaviorID = v
	}
	if v := os.Getenv("SETUPGEN_HISTORY_PATH"); v != "" {
		c.History.Path = v
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	c.Advisor.APIKey = apiKey
	if apiKey != "" {
		c.Advisor.Enabled = true
	}
	if v := os.Getenv("SETUPGEN_ADVISOR_ENABLED"); v != "" {
		c.Advisor.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
}

// NewLogger builds the process-wide zerolog.Logger from LoggingConfig.
func (c *Config) NewLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.EnableDebugLogging {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if c.Logging.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return logger.Level(level)
}
