package globallog

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/will-x86/globallog/config"
	"github.com/will-x86/globallog/logger"
	"github.com/will-x86/globallog/storage"
)

// Open builds a GlobalLog from cfg. Console lines go to out (stdout when nil)
// and counters are registered on reg when metrics are enabled.
func Open(cfg *config.Config, out io.Writer, reg prometheus.Registerer) (*GlobalLog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	history, err := newHistory(cfg.History)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithLevel(cfg.Level),
		WithLogger(newLogger(cfg.Logger, out)),
		WithHistory(history),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, WithMetrics(reg))
	}

	return New(opts...), nil
}

func newLogger(cfg config.LoggerConfig, out io.Writer) logger.Logger {
	switch cfg.Type {
	case config.LoggerSlog:
		return logger.NewSlogLoggerWithOptions(logger.SlogOptions{Output: out})
	case config.LoggerZerolog:
		return logger.NewZerologLoggerWithOptions(logger.ZerologOptions{Output: out, JSON: cfg.JSON})
	case config.LoggerZap:
		return logger.NewZapLoggerWithOptions(logger.ZapOptions{Output: out})
	default:
		return logger.NewStdLoggerWithOptions(logger.StdOptions{Output: out})
	}
}

func newHistory(cfg config.HistoryConfig) (storage.History, error) {
	switch cfg.Backend {
	case config.HistoryFile:
		h, err := storage.NewFileHistory(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file history: %w", err)
		}
		return h, nil
	case config.HistorySQLite:
		h, err := storage.NewSQLiteHistory(storage.SQLiteHistoryOptions{DBPath: cfg.Path})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite history: %w", err)
		}
		return h, nil
	default:
		return storage.NewMemoryHistory(), nil
	}
}
