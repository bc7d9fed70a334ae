package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-storefront/internal/config"
)

// HealthHandler はヘルスチェックハンドラー
type HealthHandler struct {
	mode config.Mode
}

// NewHealthHandler はHealthHandlerを作成する
func NewHealthHandler(mode config.Mode) *HealthHandler {
	return &HealthHandler{mode: mode}
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string `json:"status"`
	Mode      string `json:"mode"`
	Timestamp string `json:"timestamp"`
}

// Check はヘルスチェックを行う
// 縮退モードでもプロセスは正常なので 200 を返す
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Mode:      string(h.mode),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
