// Package observability provides Prometheus instrumentation for the
// execution engine, wired in through its lifecycle hooks.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// Metrics holds the instruments fed by engine lifecycle hooks.
type Metrics struct {
	nodeRuns     *prometheus.CounterVec
	nodeDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the engine instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nodeRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "p2p_node_runs_total",
				Help: "Total node executions by component and outcome",
			},
			[]string{"component", "status"},
		),
		nodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "p2p_node_duration_seconds",
				Help: "Duration of node executions by component",
			},
			[]string{"component"},
		),
	}
	reg.MustRegister(m.nodeRuns, m.nodeDuration)
	return m
}

// Hooks returns lifecycle hooks that record every node execution.
func (m *Metrics) Hooks() engine.LifecycleHooks {
	return engine.LifecycleHooks{
		OnNodeFinish: func(_ context.Context, ev *engine.NodeEvent) {
			status := "ok"
			if ev.Err != nil {
				status = "error"
			}
			m.nodeRuns.WithLabelValues(ev.Component, status).Inc()
			m.nodeDuration.WithLabelValues(ev.Component).Observe(ev.Duration.Seconds())
		},
	}
}
