package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoggerType selects the console printer.
type LoggerType string

const (
	LoggerStd     LoggerType = "std"
	LoggerSlog    LoggerType = "slog"
	LoggerZerolog LoggerType = "zerolog"
	LoggerZap     LoggerType = "zap"
)

// HistoryBackend selects where recorded messages are kept.
type HistoryBackend string

const (
	HistoryMemory HistoryBackend = "memory"
	HistoryFile   HistoryBackend = "file"
	HistorySQLite HistoryBackend = "sqlite"
)

type Config struct {
	Level   string        `mapstructure:"level" yaml:"level" json:"level"`
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger" json:"logger"`
	History HistoryConfig `mapstructure:"history" yaml:"history" json:"history"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
}

type LoggerConfig struct {
	Type LoggerType `mapstructure:"type" yaml:"type" json:"type"`
	// JSON applies to the zerolog printer only.
	JSON bool `mapstructure:"json" yaml:"json" json:"json"`
}

type HistoryConfig struct {
	Backend HistoryBackend `mapstructure:"backend" yaml:"backend" json:"backend"`
	// Path is a directory for the file backend and a database file for sqlite.
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		Level: "LOG",
		Logger: LoggerConfig{
			Type: LoggerStd,
		},
		History: HistoryConfig{
			Backend: HistoryMemory,
		},
	}
}

// Load reads configuration from configPath (or ./globallog.yaml when empty),
// GLOBALLOG_* environment variables and any flags already parsed into flags.
// A missing default config file is not an error.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	config := DefaultConfig()
	v.SetDefault("level", config.Level)
	v.SetDefault("logger.type", string(config.Logger.Type))
	v.SetDefault("logger.json", config.Logger.JSON)
	v.SetDefault("history.backend", string(config.History.Backend))
	v.SetDefault("history.path", config.History.Path)
	v.SetDefault("metrics.enabled", config.Metrics.Enabled)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("globallog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("GLOBALLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("error binding flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.Level == "" {
		return fmt.Errorf("level must not be empty")
	}

	switch c.Logger.Type {
	case LoggerStd, LoggerSlog, LoggerZerolog, LoggerZap:
		// Valid
	default:
		return fmt.Errorf("invalid logger type: %s", c.Logger.Type)
	}

	switch c.History.Backend {
	case HistoryMemory:
		// Valid
	case HistoryFile, HistorySQLite:
		if c.History.Path == "" {
			return fmt.Errorf("history backend %s requires a path", c.History.Backend)
		}
	default:
		return fmt.Errorf("invalid history backend: %s", c.History.Backend)
	}

	return nil
}

// Flags returns a flag set whose names match the configuration keys, ready
// to be parsed and handed to Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML/JSON/TOML config file")
	fs.String("level", "LOG", "label printed on every console line")
	fs.String("logger.type", string(LoggerStd), "console printer: std, slog, zerolog or zap")
	fs.Bool("logger.json", false, "write zerolog JSON events instead of console lines")
	fs.String("history.backend", string(HistoryMemory), "history backend: memory, file or sqlite")
	fs.String("history.path", "", "history directory (file) or database path (sqlite)")
	fs.Bool("metrics.enabled", false, "write prometheus metrics after the command")
	return fs
}
