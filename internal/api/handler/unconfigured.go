package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-storefront/internal/view"
)

// UnconfiguredHandler はクライアントID未設定時にすべてのパスで案内ページを返す
type UnconfiguredHandler struct{}

func NewUnconfiguredHandler() *UnconfiguredHandler {
	return &UnconfiguredHandler{}
}

// Show は案内ページを 503 で返す
func (h *UnconfiguredHandler) Show(c echo.Context) error {
	return c.Render(http.StatusServiceUnavailable, view.PageUnconfigured, nil)
}
