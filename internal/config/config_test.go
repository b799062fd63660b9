package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gopherpla.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
type: fr
verify: true
log:
  level: debug
metrics:
  textfile: /tmp/gopherpla.prom
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Type)
	assert.True(t, cfg.Verify)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "/tmp/gopherpla.prom", cfg.Metrics.Textfile)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"bad type":      "type: d\n",
		"bad level":     "log:\n  level: loud\n",
		"bad format":    "log:\n  format: xml\n",
		"no jobs":       "jobs: 0\n",
		"unknown field": "typ: f\n",
		"not yaml":      "type: [f\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
