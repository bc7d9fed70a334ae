package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StaticParamsHandler は事前生成するイベントページの一覧を返す
type StaticParamsHandler struct {
	service StaticParamsServiceInterface
}

func NewStaticParamsHandler(service StaticParamsServiceInterface) *StaticParamsHandler {
	return &StaticParamsHandler{service: service}
}

// StaticParam は事前生成するページのパラメータ
type StaticParam struct {
	Slug string `json:"slug"`
}

// List は事前生成するスラッグを返す。取得に失敗しても空配列で 200 を返す
func (h *StaticParamsHandler) List(c echo.Context) error {
	slugs := h.service.GenerateStaticParams(c.Request().Context())

	params := make([]StaticParam, 0, len(slugs))
	for _, s := range slugs {
		params = append(params, StaticParam{Slug: s})
	}
	return c.JSON(http.StatusOK, params)
}
