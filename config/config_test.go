package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "LOG", cfg.Level)
	assert.Equal(t, LoggerStd, cfg.Logger.Type)
	assert.Equal(t, HistoryMemory, cfg.History.Backend)
	assert.False(t, cfg.Metrics.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	configContent := `
level: "INFO"
logger:
  type: "zap"
history:
  backend: "sqlite"
  path: "/tmp/history.db"
metrics:
  enabled: true
`
	configPath := filepath.Join(t.TempDir(), "globallog.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Level)
	assert.Equal(t, LoggerZap, cfg.Logger.Type)
	assert.Equal(t, HistorySQLite, cfg.History.Backend)
	assert.Equal(t, "/tmp/history.db", cfg.History.Path)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GLOBALLOG_LEVEL", "ENV")
	t.Setenv("GLOBALLOG_LOGGER_TYPE", "zerolog")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "ENV", cfg.Level)
	assert.Equal(t, LoggerZerolog, cfg.Logger.Type)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "globallog.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("level: FILE\nlogger:\n  type: slog\n"), 0644))

	fs := Flags("test")
	require.NoError(t, fs.Parse([]string{"--level", "FLAG"}))

	cfg, err := Load(configPath, fs)
	require.NoError(t, err)
	assert.Equal(t, "FLAG", cfg.Level)
	assert.Equal(t, LoggerSlog, cfg.Logger.Type, "unset flags must not shadow the file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty level", mutate: func(c *Config) { c.Level = "" }, wantErr: true},
		{name: "unknown logger", mutate: func(c *Config) { c.Logger.Type = "logrus" }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.History.Backend = "redis" }, wantErr: true},
		{name: "file without path", mutate: func(c *Config) { c.History.Backend = HistoryFile }, wantErr: true},
		{
			name: "sqlite with path",
			mutate: func(c *Config) {
				c.History.Backend = HistorySQLite
				c.History.Path = "history.db"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
