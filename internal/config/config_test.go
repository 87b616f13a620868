package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/fintransact/internal/config"
)

func TestLoadRequiresDBSource(t *testing.T) {
	t.Setenv("DB_SOURCE", "")
	_, err := config.Load("")
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_SOURCE", "postgresql://env")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgresql://env", cfg.DBSource)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadFromYAMLFile(t *testing.T) {
	t.Setenv("DB_SOURCE", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ENVIRONMENT", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_source: postgresql://file\nport: \"7070\"\nenvironment: staging\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgresql://file", cfg.DBSource)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "staging", cfg.Env)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_source: postgresql://file\n"), 0o600))

	t.Setenv("DB_SOURCE", "postgresql://env-wins")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgresql://env-wins", cfg.DBSource)
}

func TestMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("DB_SOURCE", "postgresql://env")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgresql://env", cfg.DBSource)
}
