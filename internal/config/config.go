package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Mode はアプリケーションの起動モードを表す
type Mode string

const (
	// ModeConfigured は通常モード（Wix クライアントIDあり）
	ModeConfigured Mode = "configured"
	// ModeUnconfigured はクライアントID未設定時の縮退モード
	ModeUnconfigured Mode = "unconfigured"
)

// ClientIDEnv はWixクライアントIDの環境変数名
const ClientIDEnv = "WIX_CLIENT_ID"

// Config はアプリケーション設定を表す
type Config struct {
	Env       string
	Server    ServerConfig
	Wix       WixConfig
	Redis     RedisConfig
	Render    RenderConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	SiteFile  string
}

// ServerConfig はサーバー設定
type ServerConfig struct {
	Port         string
	PublicURL    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// WixConfig は Wix API クライアントの設定
type WixConfig struct {
	ClientID string        `validate:"required"`
	BaseURL  string        `validate:"required,url"`
	Timeout  time.Duration `validate:"gt=0"`
}

// RedisConfig はRedis設定
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// RenderConfig はページ生成の設定
type RenderConfig struct {
	// Revalidate が 0 の場合は毎リクエストで描画する
	Revalidate        time.Duration
	PrerenderSchedule string
	PrerenderLockTTL  time.Duration
}

// RateLimitConfig はクライアントIP単位のレート制限設定
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LogConfig はログ出力設定
type LogConfig struct {
	Level string
	File  string
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	cfg := &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			PublicURL:    getEnv("PUBLIC_URL", "http://localhost:8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Wix: WixConfig{
			ClientID: getEnv(ClientIDEnv, ""),
			BaseURL:  getEnv("WIX_API_BASE_URL", "https://www.wixapis.com"),
			Timeout:  getDurationEnv("WIX_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Render: RenderConfig{
			Revalidate:        getDurationEnv("RENDER_REVALIDATE", 0),
			PrerenderSchedule: getEnv("PRERENDER_SCHEDULE", "@every 5m"),
			PrerenderLockTTL:  getDurationEnv("PRERENDER_LOCK_TTL", time.Minute),
		},
		RateLimit: RateLimitConfig{
			RPS:   getFloatEnv("RATE_LIMIT_RPS", 20),
			Burst: getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", ""),
			File:  getEnv("LOG_FILE", ""),
		},
		SiteFile: getEnv("SITE_CONFIG", ""),
	}

	// REDIS_URL が設定されている場合は個別設定より優先する
	if raw := os.Getenv("REDIS_URL"); raw != "" {
		if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
			cfg.Redis.Host = u.Hostname()
			if p := u.Port(); p != "" {
				cfg.Redis.Port = p
			}
			if pw, ok := u.User.Password(); ok {
				cfg.Redis.Password = pw
			}
		}
	}

	return cfg
}

// Validate は起動時に設定を検証し、起動モードを決定する
// クライアントIDのみが欠けている場合はエラーではなく縮退モードを返す
func (c *Config) Validate() (Mode, error) {
	err := validator.New().Struct(c.Wix)
	if err == nil {
		return ModeConfigured, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "", fmt.Errorf("設定の検証に失敗しました: %w", err)
	}

	mode := ModeConfigured
	for _, fe := range verrs {
		if fe.Field() == "ClientID" {
			mode = ModeUnconfigured
			continue
		}
		return "", fmt.Errorf("Wix設定が不正です (%s): %w", fe.Field(), err)
	}
	return mode, nil
}

// IsProduction は本番環境かどうかを返す
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// CacheEnabled はページキャッシュと事前描画が有効かどうかを返す
func (c *RenderConfig) CacheEnabled() bool {
	return c.Revalidate > 0
}

// Addr はRedis接続アドレスを返す
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
