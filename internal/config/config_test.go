package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ProviderLocal, cfg.Provider)
	assert.Equal(t, "http://localhost:5000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataDir)
	assert.False(t, cfg.LLM.Enabled)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := "provider: http\napi:\n  base_url: https://erp.example.com/api/v1\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ProviderHTTP, cfg.Provider)
	assert.Equal(t, "https://erp.example.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "provider: local\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("ENJAZ_PROVIDER", "http")
	t.Setenv("ENJAZ_API_BASE_URL", "http://10.0.0.5:5000/api/v1")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ProviderHTTP, cfg.Provider)
	assert.Equal(t, "http://10.0.0.5:5000/api/v1", cfg.APIBaseURL)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("ENJAZ_PROVIDER", "carrier-pigeon")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}
