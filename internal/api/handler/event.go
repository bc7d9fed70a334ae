package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-storefront/internal/calendar"
	"github.com/sanosuguru/go-event-storefront/internal/config"
	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
	"github.com/sanosuguru/go-event-storefront/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/clock"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/logger"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-storefront/internal/view"
)

// HeaderXCache は事前描画キャッシュの利用有無を示すヘッダー
const HeaderXCache = "X-Cache"

// EventHandler はイベント詳細ページとカレンダー出力
type EventHandler struct {
	pages     EventPageServiceInterface
	catalog   CatalogServiceInterface
	cache     PageCache
	site      *config.SiteConfig
	publicURL string
	clock     clock.Clock
	metrics   *metrics.Metrics
}

// EventHandlerOption はEventHandlerの生成オプション
type EventHandlerOption func(*EventHandler)

// WithPageCache は事前描画済みページを優先して返す
func WithPageCache(cache PageCache) EventHandlerOption {
	return func(h *EventHandler) { h.cache = cache }
}

// WithEventMetrics はページ描画のメトリクスを記録する
func WithEventMetrics(m *metrics.Metrics) EventHandlerOption {
	return func(h *EventHandler) { h.metrics = m }
}

// WithClock はカレンダーのDTSTAMPに使う時計を差し替える
func WithClock(clk clock.Clock) EventHandlerOption {
	return func(h *EventHandler) { h.clock = clk }
}

func NewEventHandler(pages EventPageServiceInterface, catalog CatalogServiceInterface, site *config.SiteConfig, publicURL string, opts ...EventHandlerOption) *EventHandler {
	h := &EventHandler{
		pages:     pages,
		catalog:   catalog,
		site:      site,
		publicURL: strings.TrimRight(publicURL, "/"),
		clock:     clock.NewSystem(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Show はイベント詳細ページを描画する
// スラッグがない場合はフレームワーク既定の 404、イベントがない場合は案内ページを 404 で返す
func (h *EventHandler) Show(c echo.Context) error {
	slug, err := slugParam(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if h.cache != nil {
		html, err := h.cache.GetEventPage(ctx, slug)
		switch {
		case err == nil:
			h.metrics.ObservePageRender("event", "cached")
			c.Response().Header().Set(HeaderXCache, "HIT")
			return c.HTMLBlob(http.StatusOK, html)
		case !errors.Is(err, redis.ErrCacheMiss):
			logger.Warn("ページキャッシュの読み出しに失敗しました", zap.String("slug", slug), zap.Error(err))
		}
		c.Response().Header().Set(HeaderXCache, "MISS")
	}

	page, err := h.pages.GetEventPage(ctx, slug)
	if errors.Is(err, event.ErrEventNotFound) {
		h.metrics.ObservePageRender("event", "not_found")
		return c.Render(http.StatusNotFound, view.PageNotFound, nil)
	}
	if err != nil {
		h.metrics.ObservePageRender("event", "error")
		return err
	}

	h.metrics.ObservePageRender("event", "rendered")
	return c.Render(http.StatusOK, view.PageEvent, view.Page{
		Data: view.NewEventView(page, h.site.PlaceholderImage),
	})
}

// Calendar はイベントを iCalendar 形式で返す
func (h *EventHandler) Calendar(c echo.Context) error {
	slug, err := slugParam(c)
	if err != nil {
		return err
	}

	ev, err := h.catalog.GetEvent(c.Request().Context(), slug)
	if errors.Is(err, event.ErrEventNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "El evento no ha sido encontrado")
	}
	if err != nil {
		return err
	}

	ics, err := calendar.Export(ev, h.publicURL+"/events/"+url.PathEscape(ev.Slug), h.clock.Now())
	if errors.Is(err, calendar.ErrNoStartDate) {
		return echo.NewHTTPError(http.StatusNotFound, "La fecha del evento no está disponible")
	}
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+url.PathEscape(ev.Slug)+`.ics"`)
	return c.Blob(http.StatusOK, calendar.ContentType, []byte(ics))
}

// slugParam はパスのスラッグを返す
// ルーターは RawPath がある場合のみエスケープされたままの値を渡すので、その場合だけデコードする
func slugParam(c echo.Context) (string, error) {
	slug := c.Param("slug")
	if slug == "" {
		return "", echo.ErrNotFound
	}
	if c.Request().URL.RawPath == "" {
		return slug, nil
	}
	slug, err := url.PathUnescape(slug)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "スラッグの形式が不正です")
	}
	return slug, nil
}
