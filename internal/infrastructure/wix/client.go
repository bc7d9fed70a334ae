package wix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-storefront/internal/config"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/logger"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/metrics"
)

var (
	// ErrMalformedResponse はAPIの応答が宣言されたスキーマを満たさない場合のエラー
	ErrMalformedResponse = errors.New("APIの応答が不正です")
)

// APIError はWix APIが2xx以外を返した場合のエラー
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wix %s failed: %d %s", e.Operation, e.StatusCode, e.Body)
}

// Client はWix REST APIのクライアント
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	metrics    *metrics.Metrics

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
	now         func() time.Time
}

// Option はClientの生成オプション
type Option func(*Client)

// WithMetrics はAPI呼び出しのメトリクスを記録する
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithHTTPClient は使用するhttp.Clientを差し替える
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient は新しいClientを作成する
func NewClient(cfg *config.WixConfig, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		clientID:   cfg.ClientID,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tokenRequest struct {
	ClientID  string `json:"clientId"`
	GrantType string `json:"grantType"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// tokenRefreshMargin は有効期限の何秒前にトークンを再取得するか
const tokenRefreshMargin = 30 * time.Second

// token は匿名訪問者のアクセストークンを返す。有効期限内はキャッシュしたものを使う
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Add(tokenRefreshMargin).Before(c.expiresAt) {
		return c.accessToken, nil
	}

	var resp tokenResponse
	err := c.send(ctx, "oauth_token", http.MethodPost, "/oauth2/token", nil,
		tokenRequest{ClientID: c.clientID, GrantType: "anonymous"}, "", &resp)
	if err != nil {
		return "", fmt.Errorf("アクセストークンの取得に失敗: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("アクセストークンが空です: %w", ErrMalformedResponse)
	}

	c.accessToken = resp.AccessToken
	c.expiresAt = c.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// do は認証付きでAPIを呼び出し、応答を out にデコードする
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}
	return c.send(ctx, op, method, path, query, body, token, out)
}

func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, body any, token string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("リクエストのエンコードに失敗: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(op, "error", time.Since(start).Seconds())
		return fmt.Errorf("wix %s: %w", op, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveUpstream(op, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warn("Wix APIがエラーを返しました",
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode),
		)
		return &APIError{Operation: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("wix %s の応答のデコードに失敗: %w", op, errors.Join(ErrMalformedResponse, err))
	}
	return nil
}
