package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
server:
  host: "127.0.0.1"
  port: 3000
store:
  path: "data/database.json"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`

func TestLoad(t *testing.T) {
	t.Run("Minimal config gets defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalConfig))
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:3000", cfg.GetServerAddress())
		assert.Equal(t, "public", cfg.Server.StaticDir)
		assert.Equal(t, "backups", cfg.Store.BackupDir)
		assert.Equal(t, 7, cfg.Store.BackupRetain)
		assert.Equal(t, 5.0, cfg.Directory.RadiusMiles)
		assert.Equal(t, 5, cfg.Scoring.ReturnOnTime)
		assert.Equal(t, -20, cfg.Scoring.ReturnLate)
		assert.Equal(t, -20, cfg.Scoring.Damage)
		assert.Equal(t, 2, cfg.Scoring.GoodRating)
		assert.Equal(t, -5, cfg.Scoring.BadRating)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, 72, cfg.Scheduler.OverdueAfterHours)
		assert.NotEmpty(t, cfg.Scheduler.BackupStore)
	})

	t.Run("Explicit values survive", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalConfig+`
directory:
  radius_miles: 10
scoring:
  return_late: -50
`))
		require.NoError(t, err)
		assert.Equal(t, 10.0, cfg.Directory.RadiusMiles)
		assert.Equal(t, -50, cfg.Scoring.ReturnLate)
		assert.Equal(t, 5, cfg.Scoring.ReturnOnTime)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("STORE_PATH", "/tmp/other.json")
		cfg, err := Load(writeConfig(t, minimalConfig))
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "/tmp/other.json", cfg.Store.Path)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Short JWT secret rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 3000
store:
  path: "data/database.json"
jwt:
  secret: "short"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("Missing store path rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 3000
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "datastore path is required")
	})

	t.Run("Invalid port rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 99999
store:
  path: "data/database.json"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`))
		assert.Error(t, err)
	})
}
