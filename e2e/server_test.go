package e2e

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-storefront/internal/api"
	"github.com/sanosuguru/go-event-storefront/internal/api/middleware"
	"github.com/sanosuguru/go-event-storefront/internal/application"
	"github.com/sanosuguru/go-event-storefront/internal/config"
	"github.com/sanosuguru/go-event-storefront/internal/infrastructure/wix"
	"github.com/sanosuguru/go-event-storefront/internal/infrastructure/wix/wixtest"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/clock"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-storefront/internal/view"
)

// testNow はE2Eテストの基準時刻
var testNow = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

// TestServer はE2Eテスト用のサーバー
// Wix APIはフェイクサーバーで置き換える
type TestServer struct {
	Echo     *echo.Echo
	Wix      *wixtest.Server
	Renderer *view.Renderer
	Pages    *application.EventPageService
	Params   *application.StaticParamsService
	Metrics  *metrics.Metrics
	Config   *config.Config
}

// serverOption はテストサーバー構築時の追加設定
type serverOption func(*api.Dependencies)

// NewTestServer は設定済みモードのテストサーバーを作成する
func NewTestServer(t *testing.T, opts ...serverOption) *TestServer {
	t.Helper()

	srv := wixtest.NewServer(t)

	cfg := config.Load()
	cfg.Wix.ClientID = "client-123"
	cfg.Wix.BaseURL = srv.URL
	cfg.Wix.Timeout = 5 * time.Second
	cfg.Server.PublicURL = "https://tienda.example.com"
	cfg.RateLimit.RPS = 0

	mode, err := cfg.Validate()
	require.NoError(t, err)
	require.Equal(t, config.ModeConfigured, mode)

	renderer, err := view.NewRenderer(config.DefaultSite())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)
	clk := clock.NewFixed(testNow)

	client := wix.NewClient(&cfg.Wix, wix.WithMetrics(m))
	eventRepo := wix.NewEventRepository(client)
	pages := application.NewEventPageService(eventRepo, wix.NewTicketRepository(client), wix.NewScheduleRepository(client), clk)
	params := application.NewStaticParamsService(eventRepo)

	deps := api.Dependencies{
		Mode:         mode,
		Config:       cfg,
		Renderer:     renderer,
		Metrics:      m,
		Gatherer:     reg,
		MetricsAuth:  &middleware.MetricsConfig{},
		EventPages:   pages,
		Catalog:      application.NewCatalogService(eventRepo),
		StaticParams: params,
		Clock:        clk,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	return &TestServer{
		Echo:     api.NewRouter(deps),
		Wix:      srv,
		Renderer: renderer,
		Pages:    pages,
		Params:   params,
		Metrics:  m,
		Config:   cfg,
	}
}

// NewUnconfiguredServer はクライアントID未設定のテストサーバーを作成する
func NewUnconfiguredServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.Load()
	cfg.Wix.ClientID = ""
	cfg.Wix.BaseURL = "https://www.wixapis.com"
	cfg.Wix.Timeout = time.Second
	cfg.RateLimit.RPS = 0

	mode, err := cfg.Validate()
	require.NoError(t, err)
	require.Equal(t, config.ModeUnconfigured, mode)

	renderer, err := view.NewRenderer(config.DefaultSite())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	return api.NewRouter(api.Dependencies{
		Mode:     mode,
		Config:   cfg,
		Renderer: renderer,
		Metrics:  metrics.NewWithRegistry(reg),
		Gatherer: reg,
	})
}

// Get はリクエストを実行し、ステータスと本文を返す
func Get(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec, string(body)
}
