package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanosuguru/go-event-storefront/internal/api/handler"
	"github.com/sanosuguru/go-event-storefront/internal/api/middleware"
	"github.com/sanosuguru/go-event-storefront/internal/config"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/clock"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-storefront/internal/view"
)

// Dependencies はルーターの構築に必要な依存
// Mode が ModeUnconfigured の場合、サービス類は参照されない
type Dependencies struct {
	Mode        config.Mode
	Config      *config.Config
	Renderer    *view.Renderer
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	MetricsAuth *middleware.MetricsConfig

	EventPages   handler.EventPageServiceInterface
	Catalog      handler.CatalogServiceInterface
	StaticParams handler.StaticParamsServiceInterface
	PageCache    handler.PageCache
	Clock        clock.Clock
}

// NewRouter はEchoインスタンスを作成し、起動モードに応じたルートを登録する
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = d.Renderer
	e.HTTPErrorHandler = CustomHTTPErrorHandler

	cfg := d.Config
	if cfg == nil {
		cfg = config.Load()
	}

	middleware.SetupMiddleware(e, middleware.Options{RateLimit: cfg.RateLimit})
	e.Use(middleware.PrometheusMiddleware(d.Metrics))

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsHandler := echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	health := handler.NewHealthHandler(d.Mode)
	e.GET("/healthz", health.Check)
	e.GET("/metrics", metricsHandler, middleware.MetricsBasicAuth(d.MetricsAuth))

	if d.Mode == config.ModeUnconfigured {
		unconfigured := handler.NewUnconfiguredHandler()
		e.Any("/", unconfigured.Show)
		e.Any("/*", unconfigured.Show)
		return e
	}

	site := d.Renderer.Site()

	opts := []handler.EventHandlerOption{handler.WithEventMetrics(d.Metrics)}
	if d.PageCache != nil {
		opts = append(opts, handler.WithPageCache(d.PageCache))
	}
	if d.Clock != nil {
		opts = append(opts, handler.WithClock(d.Clock))
	}

	events := handler.NewEventHandler(d.EventPages, d.Catalog, site, cfg.Server.PublicURL, opts...)
	home := handler.NewHomeHandler(d.Catalog, site, d.Metrics)
	staticParams := handler.NewStaticParamsHandler(d.StaticParams)

	e.GET("/", home.Index)
	e.GET("/events/", events.Show)
	e.GET("/events/:slug", events.Show)
	e.GET("/events/:slug/calendar.ics", events.Calendar)

	v1 := e.Group("/api/v1")
	v1.GET("/static-params", staticParams.List)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Página no encontrada")
	})

	return e
}
