package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
	"github.com/sanosuguru/go-event-storefront/internal/infrastructure/wix"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/logger"
	"github.com/sanosuguru/go-event-storefront/internal/view"
)

// ErrorResponse はJSON APIのエラーレスポンス
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// classify はエラーをステータスコードと利用者向けメッセージに変換する
func classify(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		m, ok := he.Message.(string)
		if !ok || m == http.StatusText(he.Code) {
			m = defaultMessage(he.Code)
		}
		return he.Code, m
	}

	var apiErr *wix.APIError
	switch {
	case errors.As(err, &apiErr),
		errors.Is(err, wix.ErrMalformedResponse),
		errors.Is(err, event.ErrExternalURLMissing),
		errors.Is(err, event.ErrEventIdentityMissing):
		return http.StatusBadGateway, "El servicio de eventos no está disponible"
	default:
		return http.StatusInternalServerError, "Error interno del servidor"
	}
}

// defaultMessage はフレームワーク既定のエラーを利用者向けの文言に置き換える
func defaultMessage(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Página no encontrada"
	case http.StatusMethodNotAllowed:
		return "Método no permitido"
	default:
		return http.StatusText(code)
	}
}

// CustomHTTPErrorHandler はHTMLのエラーページを返すエラーハンドラー
// /api/ 配下はJSONで返す
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := classify(err)

	if code >= 500 {
		logger.Error("サーバーエラー",
			zap.Int("status", code),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			logger.Error("エラーレスポンス送信失敗", zap.Error(err))
		}
		return
	}

	var sendErr error
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		sendErr = c.JSON(code, ErrorResponse{Error: message, Code: code})
	} else {
		sendErr = c.Render(code, view.PageError, view.Page{
			Data: view.ErrorView{Status: code, Message: message},
		})
	}
	if sendErr != nil {
		logger.Error("エラーレスポンス送信失敗", zap.Error(sendErr))
	}
}
