// Package config loads watcrack settings from a YAML file with WATCRACK_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/watcrack/internal/llm"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/timing"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultLowContentWords = 60
	DefaultIdleThreshold   = timing.DefaultIdleThreshold
)

// DefaultDurations are the session lengths offered in the topic picker.
var DefaultDurations = []time.Duration{timing.ShortSession, timing.LongSession}

// Config is the top-level watcrack configuration.
type Config struct {
	Session SessionConfig `yaml:"session"`
	UI      UIConfig      `yaml:"ui"`
	LLM     llm.Config    `yaml:"llm"`
}

// SessionConfig controls writing sessions.
type SessionConfig struct {
	// Durations lists the selectable session lengths, first is the default.
	Durations []time.Duration `yaml:"durations"`

	// IdleThreshold is the longest gap between edits still counted as typing.
	IdleThreshold time.Duration `yaml:"idle_threshold"`

	// LowContentWords hides strengths and weaknesses on the report below
	// this many words. Zero turns the notice off.
	LowContentWords int `yaml:"low_content_words"`
}

// UIConfig controls presentation.
type UIConfig struct {
	// Theme is "light" or "dark". Empty keeps the saved preference.
	Theme string `yaml:"theme"`
}

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Durations:       append([]time.Duration(nil), DefaultDurations...),
			IdleThreshold:   DefaultIdleThreshold,
			LowContentWords: DefaultLowContentWords,
		},
		LLM: llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/watcrack/config.yaml, falling back
// to ~/.config/watcrack/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "watcrack", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home dir: %w", err)
	}
	return filepath.Join(home, ".config", "watcrack", "config.yaml"), nil
}

// Load reads the YAML file at path, applies env overrides and validates.
// A missing file is an error unless optional is set, in which case the
// defaults are used.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	fillDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// fillDefaults restores defaults for fields where an explicit zero has no
// useful meaning. A zero low_content_words is kept and turns the notice off.
func fillDefaults(cfg *Config) {
	if len(cfg.Session.Durations) == 0 {
		cfg.Session.Durations = append([]time.Duration(nil), DefaultDurations...)
	}
	if cfg.Session.IdleThreshold == 0 {
		cfg.Session.IdleThreshold = DefaultIdleThreshold
	}
	if cfg.LLM.Retry.MaxAttempts == 0 {
		cfg.LLM.Retry = llm.DefaultConfig().Retry
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	for i, d := range c.Session.Durations {
		if d <= 0 {
			return fmt.Errorf("session.durations[%d] must be positive, got %s", i, d)
		}
	}
	if c.Session.IdleThreshold < 0 {
		return fmt.Errorf("session.idle_threshold must not be negative")
	}
	if c.Session.LowContentWords < 0 {
		return fmt.Errorf("session.low_content_words must not be negative")
	}
	if c.UI.Theme != "" && !stats.Theme(c.UI.Theme).Valid() {
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative")
	}
	return c.LLM.Validate()
}

// DefaultDuration is the first configured session length.
func (c *Config) DefaultDuration() time.Duration {
	if len(c.Session.Durations) == 0 {
		return DefaultDurations[0]
	}
	return c.Session.Durations[0]
}

// applyEnv overlays WATCRACK_* variables onto cfg.
func applyEnv(cfg *Config) error {
	str := map[string]*string{
		"WATCRACK_THEME":             &cfg.UI.Theme,
		"WATCRACK_LLM_PROVIDER":      &cfg.LLM.Provider,
		"WATCRACK_ANTHROPIC_API_KEY": &cfg.LLM.Anthropic.APIKey,
		"WATCRACK_ANTHROPIC_MODEL":   &cfg.LLM.Anthropic.Model,
		"WATCRACK_OPENAI_API_KEY":    &cfg.LLM.OpenAI.APIKey,
		"WATCRACK_OPENAI_MODEL":      &cfg.LLM.OpenAI.Model,
		"WATCRACK_OPENAI_BASE_URL":   &cfg.LLM.OpenAI.BaseURL,
		"WATCRACK_GEMINI_API_KEY":    &cfg.LLM.Gemini.APIKey,
		"WATCRACK_GEMINI_MODEL":      &cfg.LLM.Gemini.Model,
	}
	for key, dst := range str {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	durs := map[string]*time.Duration{
		"WATCRACK_IDLE_THRESHOLD": &cfg.Session.IdleThreshold,
		"WATCRACK_LLM_TIMEOUT":    &cfg.LLM.Timeout,
	}
	for key, dst := range durs {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}

	if v := os.Getenv("WATCRACK_LOW_CONTENT_WORDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WATCRACK_LOW_CONTENT_WORDS: %w", err)
		}
		cfg.Session.LowContentWords = n
	}
	return nil
}
