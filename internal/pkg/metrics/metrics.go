package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec

	// Wix API 呼び出しの総数（operation, status）
	UpstreamRequestsTotal *prometheus.CounterVec

	// Wix API 呼び出しのレイテンシ（operation）
	UpstreamRequestDuration *prometheus.HistogramVec

	// ページ描画の結果（page, outcome: rendered, not_found, cached, error）
	PageRendersTotal *prometheus.CounterVec

	// 事前描画ジョブの実行回数（status: success, skipped, failed）
	PrerenderRunsTotal *prometheus.CounterVec
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		UpstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of requests sent to the commerce API",
			},
			[]string{"operation", "status"},
		),
		UpstreamRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Commerce API latency in seconds",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		PageRendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_renders_total",
				Help: "Total number of page renders by outcome",
			},
			[]string{"page", "outcome"},
		),
		PrerenderRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prerender_runs_total",
				Help: "Total number of prerender runs",
			},
			[]string{"status"},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
		m.PageRendersTotal,
		m.PrerenderRunsTotal,
	)

	return m
}

// ObservePageRender はページ描画結果を記録する。m が nil の場合は何もしない
func (m *Metrics) ObservePageRender(page, outcome string) {
	if m == nil {
		return
	}
	m.PageRendersTotal.WithLabelValues(page, outcome).Inc()
}

// ObservePrerender は事前描画ジョブの結果を記録する
func (m *Metrics) ObservePrerender(status string) {
	if m == nil {
		return
	}
	m.PrerenderRunsTotal.WithLabelValues(status).Inc()
}

// ObserveUpstream は外部API呼び出しの結果とレイテンシを記録する
func (m *Metrics) ObserveUpstream(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	m.UpstreamRequestDuration.WithLabelValues(operation).Observe(seconds)
}

// デフォルトのメトリクスインスタンス
var defaultMetrics *Metrics

// Init はデフォルトのメトリクスインスタンスを初期化する
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

