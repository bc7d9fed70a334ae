package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-storefront/internal/config"
	"github.com/sanosuguru/go-event-storefront/internal/view"
)

// NewTestEcho はテスト用のEchoインスタンスを作成する
func NewTestEcho() *echo.Echo {
	e := echo.New()
	r, err := view.NewRenderer(config.DefaultSite())
	if err != nil {
		panic(err)
	}
	e.Renderer = r
	return e
}
