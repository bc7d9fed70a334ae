package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-storefront/internal/config"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/logger"
)

// NewClient はRedisクライアントを作成する
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping はRedis接続を確認する
func Ping(ctx context.Context, client *redis.Client) error {
	_, err := client.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("Redis接続に失敗しました: %w", err)
	}
	return nil
}

// Connect はクライアントを作成し、接続できるまで Ping を再試行する
// attempts 回失敗した場合はクライアントを閉じてエラーを返す
func Connect(ctx context.Context, cfg *config.RedisConfig, attempts uint) (*redis.Client, error) {
	client := NewClient(cfg)

	err := retry.Do(
		func() error { return Ping(ctx, client) },
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(200*time.Millisecond),
		retry.MaxDelay(2*time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("Redis接続を再試行します",
				zap.Uint("attempt", n+1),
				zap.String("addr", cfg.Addr()),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
