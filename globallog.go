// Package globallog records text messages per key and prints immediate
// console lines tagged with a fixed level label.
//
// A GlobalLog is an ordinary value: build one with New and pass it to the
// code that logs, or share the process-wide instance returned by Default.
package globallog

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/will-x86/globallog/logger"
	"github.com/will-x86/globallog/storage"
)

// DefaultLevel is the label used when no level is configured.
const DefaultLevel = "LOG"

type GlobalLog struct {
	level   string
	logger  logger.Logger
	history storage.History
	metrics *metrics
}

type Option func(*GlobalLog)

// WithLevel sets the label printed on every line. An empty label keeps DefaultLevel.
func WithLevel(level string) Option {
	return func(g *GlobalLog) {
		if level != "" {
			g.level = level
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(g *GlobalLog) {
		g.logger = log
	}
}

func WithHistory(h storage.History) Option {
	return func(g *GlobalLog) {
		g.history = h
	}
}

// WithMetrics registers operation counters on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(g *GlobalLog) {
		g.metrics = newMetrics(reg)
	}
}

func New(opts ...Option) *GlobalLog {
	g := &GlobalLog{
		level:   DefaultLevel,
		logger:  logger.NewStdLogger(),
		history: storage.NewMemoryHistory(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

var (
	defaultLog  *GlobalLog
	defaultOnce sync.Once
)

// Default returns the process-wide instance, creating it on first use.
// Its history lives in memory and is never reset.
func Default() *GlobalLog {
	defaultOnce.Do(func() {
		defaultLog = New()
	})
	return defaultLog
}

func (g *GlobalLog) Level() string {
	return g.level
}

// Record appends msg to the history of key, creating it when absent.
func (g *GlobalLog) Record(key, msg string) error {
	if err := g.history.Append(key, msg); err != nil {
		return fmt.Errorf("failed to record message for %q: %w", key, err)
	}
	g.metrics.recorded(key)
	return nil
}

// Print writes "[level] - msg" to the console. History is not touched.
func (g *GlobalLog) Print(msg string) {
	g.logger.Print(g.level, msg)
	g.metrics.printed(g.level)
}

// Messages returns a copy of the messages recorded under key, oldest first.
func (g *GlobalLog) Messages(key string) ([]string, error) {
	msgs, err := g.history.Messages(key)
	if err != nil {
		g.metrics.lookupFailed(err)
		return nil, err
	}
	return msgs, nil
}

// Get returns the history of key rendered as "[key] - ['m1', 'm2']".
// It fails with ErrKeyNotFound when nothing was recorded under key.
func (g *GlobalLog) Get(key string) (string, error) {
	msgs, err := g.Messages(key)
	if err != nil {
		return "", err
	}
	return "[" + key + "] - " + FormatMessages(msgs), nil
}

func (g *GlobalLog) Keys() ([]string, error) {
	return g.history.Keys()
}

// For returns a handle whose calls are attributed to key.
func (g *GlobalLog) For(key string) *Handle {
	return &Handle{log: g, key: key}
}

func (g *GlobalLog) Close() error {
	return g.history.Close()
}
