package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "trustlens", cfg.Name)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 90*time.Second, cfg.AttemptTimeout())
	assert.Equal(t, 2*time.Minute, cfg.GeminiTimeout())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Gemini.Model, cfg.Gemini.Model)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trustlens.yaml")
	data := `
gemini:
  api_key: test-key
  model: gemini-2.5-pro
  timeout: 30s
pipeline:
  attempt_timeout: 45s
logging:
  debug_mode: true
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.GeminiTimeout())
	assert.Equal(t, 45*time.Second, cfg.AttemptTimeout())
	assert.True(t, cfg.Logging.DebugMode)
}

func TestLoad_MalformedFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("TRUSTLENS_MODEL", "gemini-env")
	t.Setenv("TRUSTLENS_ATTEMPT_TIMEOUT", "10s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-env", cfg.Gemini.Model)
	assert.Equal(t, 10*time.Second, cfg.AttemptTimeout())
}

func TestParseDuration_MalformedFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.AttemptTimeout = "soon"
	assert.Equal(t, 90*time.Second, cfg.AttemptTimeout())

	cfg.Pipeline.AttemptTimeout = "-5s"
	assert.Equal(t, 90*time.Second, cfg.AttemptTimeout())
}
