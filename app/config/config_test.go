package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the override variables so a developer's shell does
// not leak into the assertions. applyEnv ignores empty values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_HOST", "DB_PORT", "DB_NAME", "JWT_SECRET"} {
		t.Setenv(key, "")
	}
}

func TestLoadAppliesFileValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 9090\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "academy", cfg.Database.Name)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessExpiry)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadUnreadableFileFails(t *testing.T) {
	// A directory path makes ReadFile fail with something other than
	// not-exist; that must surface instead of silently booting on
	// defaults.
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
