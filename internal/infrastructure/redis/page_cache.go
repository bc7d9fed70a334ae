package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss = errors.New("キャッシュが見つかりません")
)

// PageCache は事前描画したHTMLページのキャッシュを管理する
type PageCache struct {
	client *redis.Client
}

// NewPageCache は新しいPageCacheインスタンスを作成する
func NewPageCache(client *redis.Client) *PageCache {
	return &PageCache{client: client}
}

// GetEventPage はイベントページのHTMLをキャッシュから取得する
func (c *PageCache) GetEventPage(ctx context.Context, slug string) ([]byte, error) {
	val, err := c.client.Get(ctx, eventPageKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	return val, nil
}

// SetEventPage はイベントページのHTMLをキャッシュに保存する
func (c *PageCache) SetEventPage(ctx context.Context, slug string, html []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, eventPageKey(slug), html, ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

// Invalidate はイベントページのキャッシュを無効化する
func (c *PageCache) Invalidate(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, eventPageKey(slug)).Err(); err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

func eventPageKey(slug string) string {
	return fmt.Sprintf("pages:event:%s", slug)
}
