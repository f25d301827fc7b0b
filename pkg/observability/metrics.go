package observability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/ferris/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts menu selections and lesson pages shown.
type Metrics struct {
	registry   *prometheus.Registry
	selections *prometheus.CounterVec
	pages      *prometheus.CounterVec
}

// NewMetrics creates the counters on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ferris_menu_selections_total",
				Help: "Total number of menu inputs, by resolved action",
			},
			[]string{"action"},
		),
		pages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ferris_pages_shown_total",
				Help: "Total number of lesson pages shown, by lesson",
			},
			[]string{"lesson"},
		),
	}
	m.registry.MustRegister(m.selections, m.pages)
	return m
}

// RecordSelection counts one resolved menu input. Safe on a nil receiver.
func (m *Metrics) RecordSelection(action domain.MenuAction) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(action.String()).Inc()
}

// RecordPage counts one lesson page shown. Safe on a nil receiver.
func (m *Metrics) RecordPage(action domain.MenuAction) {
	if m == nil {
		return
	}
	m.pages.WithLabelValues(action.String()).Inc()
}

// Registry exposes the underlying registry (e.g. for prometheus/testutil).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Snapshot gathers every counter into a flat map keyed like
// `ferris_menu_selections_total{action="Quit"}`.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			out[seriesKey(mf.GetName(), metric)] = metric.GetCounter().GetValue()
		}
	}
	return out, nil
}

// LogAttrs returns the snapshot as sorted key/value pairs for slog.
func (m *Metrics) LogAttrs() []any {
	snap, err := m.Snapshot()
	if err != nil {
		return []any{"error", err}
	}
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		attrs = append(attrs, k, snap[k])
	}
	return attrs
}

func seriesKey(name string, metric *dto.Metric) string {
	labels := metric.GetLabel()
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, 0, len(labels))
	for _, lp := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}
