package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SAFETYPRO_LOG_MODE", "SAFETYPRO_LOG_FILE", "SAFETYPRO_DB"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.LogMode)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.DBPath)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even
	// to the empty string, so unset them for this test.
	os.Unsetenv("SAFETYPRO_LOG_MODE")
	os.Unsetenv("SAFETYPRO_DB")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SAFETYPRO_LOG_MODE=production\nSAFETYPRO_DB=/tmp/x.db\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SAFETYPRO_LOG_MODE")
		os.Unsetenv("SAFETYPRO_DB")
	})

	cfg, err := LoadFiles(envFile)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.LogMode)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
}

func TestLoadRejectsBadLogMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAFETYPRO_LOG_MODE", "verbose")

	_, err := LoadFiles()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogMode")
}

func TestLogPath(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, filepath.Join("/data", "safetypro.log"), cfg.LogPath("/data"))

	cfg.LogFile = "/var/log/sp.log"
	assert.Equal(t, "/var/log/sp.log", cfg.LogPath("/data"))
}
