package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-storefront/internal/config"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-storefront/internal/view"
)

const homeEventLimit = 10

// HomeHandler はトップページ（開催予定のイベント一覧）
type HomeHandler struct {
	catalog CatalogServiceInterface
	site    *config.SiteConfig
	metrics *metrics.Metrics
}

func NewHomeHandler(catalog CatalogServiceInterface, site *config.SiteConfig, m *metrics.Metrics) *HomeHandler {
	return &HomeHandler{catalog: catalog, site: site, metrics: m}
}

// Index はイベント一覧を描画する
func (h *HomeHandler) Index(c echo.Context) error {
	events, err := h.catalog.ListUpcoming(c.Request().Context(), homeEventLimit)
	if err != nil {
		h.metrics.ObservePageRender("home", "error")
		return err
	}

	h.metrics.ObservePageRender("home", "rendered")
	return c.Render(http.StatusOK, view.PageHome, view.Page{
		Data: view.NewHomeView(events, h.site.PlaceholderImage),
	})
}
