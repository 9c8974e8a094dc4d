package globallog

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/will-x86/globallog/storage"
)

const metricsNamespace = "globallog"

// metrics is nil when instrumentation is off; every method tolerates that.
type metrics struct {
	records        *prometheus.CounterVec
	prints         *prometheus.CounterVec
	lookupFailures *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "records_total",
			Help:      "Messages recorded, by key.",
		}, []string{"key"}),
		prints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "prints_total",
			Help:      "Console lines printed, by level label.",
		}, []string{"level"}),
		lookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookup_failures_total",
			Help:      "Failed history lookups, by reason.",
		}, []string{"reason"}),
	}

	if reg != nil {
		reg.MustRegister(m.records, m.prints, m.lookupFailures)
	}

	return m
}

func (m *metrics) recorded(key string) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(key).Inc()
}

func (m *metrics) printed(level string) {
	if m == nil {
		return
	}
	m.prints.WithLabelValues(level).Inc()
}

func (m *metrics) lookupFailed(err error) {
	if m == nil {
		return
	}
	reason := "backend"
	if errors.Is(err, storage.ErrKeyNotFound) {
		reason = "key_not_found"
	}
	m.lookupFailures.WithLabelValues(reason).Inc()
}
