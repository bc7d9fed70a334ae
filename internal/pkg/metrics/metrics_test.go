package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestNewMetrics(t *testing.T) {
	// 各テストで新しいレジストリを使用
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	require.NotNil(t, m)
	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.UpstreamRequestsTotal)
	assert.NotNil(t, m.UpstreamRequestDuration)
	assert.NotNil(t, m.PageRendersTotal)
	assert.NotNil(t, m.PrerenderRunsTotal)
}

func TestHTTPRequestsTotal(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.HTTPRequestsTotal.WithLabelValues("GET", "/events/:slug", "200").Inc()
	m.HTTPRequestsTotal.WithLabelValues("GET", "/events/:slug", "404").Inc()
	m.HTTPRequestsTotal.WithLabelValues("GET", "/", "200").Inc()

	f := findFamily(t, reg, "http_requests_total")
	require.NotNil(t, f, "http_requests_total metric not found")
	assert.Equal(t, 3, len(f.GetMetric()))
}

func TestObserveUpstream(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObserveUpstream("query_events", "200", 0.12)
	m.ObserveUpstream("query_events", "500", 0.30)
	m.ObserveUpstream("list_schedule", "200", 0.05)

	total := findFamily(t, reg, "upstream_requests_total")
	require.NotNil(t, total)
	assert.Equal(t, 3, len(total.GetMetric()))

	duration := findFamily(t, reg, "upstream_request_duration_seconds")
	require.NotNil(t, duration)
	assert.Equal(t, 2, len(duration.GetMetric()))
}

func TestObservePageRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObservePageRender("event", "rendered")
	m.ObservePageRender("event", "rendered")
	m.ObservePageRender("event", "not_found")

	f := findFamily(t, reg, "page_renders_total")
	require.NotNil(t, f)
	assert.Equal(t, 2, len(f.GetMetric()))

	for _, metric := range f.GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == "outcome" && label.GetValue() == "rendered" {
				assert.Equal(t, 2.0, metric.GetCounter().GetValue())
			}
		}
	}
}

func TestObservePrerender(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObservePrerender("success")
	m.ObservePrerender("skipped")

	f := findFamily(t, reg, "prerender_runs_total")
	require.NotNil(t, f)
	assert.Equal(t, 2, len(f.GetMetric()))
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObservePageRender("event", "rendered")
		m.ObservePrerender("success")
		m.ObserveUpstream("query_events", "200", 0.1)
	})
}
