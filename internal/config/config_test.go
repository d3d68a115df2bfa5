package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8081", cfg.Listen)
	require.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "listen: \":9000\"\nbackend:\n  baseurl: \"http://api.internal:8000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("VITRINE_BACKEND_BASEURL", "http://override:8000")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Listen)
	require.Equal(t, "http://override:8000", cfg.Backend.BaseURL)
}
