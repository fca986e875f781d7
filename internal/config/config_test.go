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
	p := filepath.Join(t.TempDir(), "zenquiz.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	d := DefaultConfig()
	assert.Equal(t, 1500*time.Millisecond, cfg.AutoAdvance)
	assert.Equal(t, "", cfg.Catalog)
	assert.Equal(t, d.Log, cfg.Log)
}

func TestLoad_File(t *testing.T) {
	p := writeConfig(t, `
catalog: /tmp/levels.json
auto_advance: 2s
default_name: Basho
log:
  level: debug
  file: /tmp/zq.log
`)

	cfg, err := Load(NewViper(), p)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/levels.json", cfg.Catalog)
	assert.Equal(t, 2*time.Second, cfg.AutoAdvance)
	assert.Equal(t, "Basho", cfg.DefaultName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/zq.log", cfg.Log.File)
	assert.Equal(t, DefaultConfig().Log.MaxBackups, cfg.Log.MaxBackups)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "auto_advance: 2s\nlog:\n  level: debug\n")
	t.Setenv("ZENQUIZ_AUTO_ADVANCE", "500ms")
	t.Setenv("ZENQUIZ_LOG_LEVEL", "warn")

	cfg, err := Load(NewViper(), p)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.AutoAdvance)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero auto advance", func(c *Config) { c.AutoAdvance = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestDefaultLogPath_XDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	assert.Equal(t, filepath.Join("/var/state", "zenquiz", "zenquiz.log"), DefaultLogPath())
}
