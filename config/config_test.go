package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, "fitness-tracker", cfg.ServiceName)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Empty(t, cfg.Packages.File)
	assert.Empty(t, cfg.Metrics.TextFile)
}

func TestNewConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
service:
  name: tracker-test
log:
  level: debug
packages:
  file: /tmp/packages.yaml
metrics:
  textfile: /tmp/tracker.prom
`), 0o600))

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "tracker-test", cfg.ServiceName)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, "/tmp/packages.yaml", cfg.Packages.File)
	assert.Equal(t, "/tmp/tracker.prom", cfg.Metrics.TextFile)
}

func TestNewConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "TRACE")

	_, err := NewConfig("")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	PrintConfig(&buf, &Config{ServiceName: "svc", Log: LogConfig{Level: "INFO"}})

	assert.Contains(t, buf.String(), "service: svc")
	assert.Contains(t, buf.String(), "packages file: <built-in>")
	assert.Contains(t, buf.String(), "metrics textfile: <disabled>")
}
