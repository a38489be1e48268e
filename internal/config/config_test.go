package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
session:
  durations: [10m, 20m]
  idle_threshold: 15s
  low_content_words: 40
ui:
  theme: dark
llm:
  provider: mock
  timeout: 5s
  retry:
    max_attempts: 2
`)
	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{10 * time.Minute, 20 * time.Minute}, cfg.Session.Durations)
	assert.Equal(t, 15*time.Second, cfg.Session.IdleThreshold)
	assert.Equal(t, 40, cfg.Session.LowContentWords)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 2, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.DefaultDuration())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "ui:\n  theme: light\n")
	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, DefaultDurations, cfg.Session.Durations)
	assert.Equal(t, DefaultIdleThreshold, cfg.Session.IdleThreshold)
	assert.Equal(t, DefaultLowContentWords, cfg.Session.LowContentWords)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.False(t, cfg.LLM.Enabled())
	assert.Equal(t, 15*time.Minute, cfg.DefaultDuration())
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(missing, false)
	assert.Error(t, err)

	cfg, err := Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, DefaultLowContentWords, cfg.Session.LowContentWords)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
ui:
  theme: light
llm:
  provider: mock
`)
	t.Setenv("WATCRACK_THEME", "dark")
	t.Setenv("WATCRACK_LLM_PROVIDER", "openai")
	t.Setenv("WATCRACK_OPENAI_API_KEY", "sk-test")
	t.Setenv("WATCRACK_OPENAI_BASE_URL", "https://openrouter.ai/api/v1")
	t.Setenv("WATCRACK_IDLE_THRESHOLD", "45s")
	t.Setenv("WATCRACK_LOW_CONTENT_WORDS", "80")

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.OpenAI.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Session.IdleThreshold)
	assert.Equal(t, 80, cfg.Session.LowContentWords)
}

func TestLoad_BadEnv(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("WATCRACK_IDLE_THRESHOLD", "soon")
	_, err := Load(path, false)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "session: [unclosed"},
		{"negative duration", "session:\n  durations: [-5m]\n"},
		{"unknown theme", "ui:\n  theme: sepia\n"},
		{"unknown provider", "llm:\n  provider: llama\n"},
		{"provider without key", "llm:\n  provider: anthropic\n"},
		{"negative low content", "session:\n  low_content_words: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), false)
			assert.Error(t, err)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "watcrack", "config.yaml"), p)
}

func TestLoad_ZeroLowContentWordsTurnsNoticeOff(t *testing.T) {
	cfg, err := Load(writeConfig(t, "session:\n  low_content_words: 0\n"), false)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Session.LowContentWords)

	t.Setenv("WATCRACK_LOW_CONTENT_WORDS", "0")
	cfg, err = Load(writeConfig(t, "ui:\n  theme: dark\n"), false)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Session.LowContentWords)
}
