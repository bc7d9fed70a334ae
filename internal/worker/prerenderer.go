package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-storefront/internal/application"
	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
	"github.com/sanosuguru/go-event-storefront/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/logger"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-storefront/internal/view"
)

// 事前描画ジョブの結果ラベル
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// LockKey は複数インスタンスで事前描画が重複しないためのロックキー
const LockKey = "prerender"

// SlugSource は事前描画対象のスラッグを返す
type SlugSource interface {
	GenerateStaticParams(ctx context.Context) []string
}

// PageSource はイベントページのデータを組み立てる
type PageSource interface {
	GetEventPage(ctx context.Context, slug string) (*application.EventPage, error)
}

// PageStore は描画済みHTMLを保存する
type PageStore interface {
	SetEventPage(ctx context.Context, slug string, html []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, slug string) error
}

// PageRenderer はページをHTMLに変換する
type PageRenderer interface {
	RenderBytes(name string, data any) ([]byte, error)
}

// Locker はジョブ単位の排他制御。取得できない場合は redis.ErrLockNotAcquired を返す
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

// RedisLocker は redis.LockManager を Locker として使う
type RedisLocker struct {
	manager *redis.LockManager
}

func NewRedisLocker(manager *redis.LockManager) *RedisLocker {
	return &RedisLocker{manager: manager}
}

// TryLock はロックを取得し、解放関数を返す
func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lock, err := l.manager.AcquireLock(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	logger.Debug("ロック取得", zap.String("key", lock.Key()), zap.Duration("ttl", ttl))
	return lock.Release, nil
}

// PrerendererConfig は事前描画ワーカーの設定
type PrerendererConfig struct {
	Schedule    string
	Revalidate  time.Duration
	LockTTL     time.Duration
	Placeholder string
}

// Prerenderer は公開スラッグのイベントページを定期的に描画してキャッシュする
type Prerenderer struct {
	slugs    SlugSource
	pages    PageSource
	store    PageStore
	renderer PageRenderer
	locker   Locker
	metrics  *metrics.Metrics
	cfg      PrerendererConfig

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewPrerenderer は新しい事前描画ワーカーを作成する
// locker が nil の場合はロックを取らずに実行する
func NewPrerenderer(
	slugs SlugSource,
	pages PageSource,
	store PageStore,
	renderer PageRenderer,
	locker Locker,
	m *metrics.Metrics,
	cfg PrerendererConfig,
) *Prerenderer {
	return &Prerenderer{
		slugs:    slugs,
		pages:    pages,
		store:    store,
		renderer: renderer,
		locker:   locker,
		metrics:  m,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start は起動時に一度実行し、以降はスケジュールに従って実行する
// ctx のキャンセルか Stop で戻る
func (p *Prerenderer) Start(ctx context.Context) error {
	defer close(p.doneCh)

	c := cron.New()
	if _, err := c.AddFunc(p.cfg.Schedule, func() { p.RunOnce(ctx) }); err != nil {
		return err
	}

	logger.Info("事前描画ワーカー開始",
		zap.String("schedule", p.cfg.Schedule),
		zap.Duration("revalidate", p.cfg.Revalidate),
	)

	p.RunOnce(ctx)
	c.Start()

	select {
	case <-ctx.Done():
		logger.Info("事前描画ワーカー停止（コンテキストキャンセル）")
	case <-p.stopCh:
		logger.Info("事前描画ワーカー停止（シグナル受信）")
	}

	<-c.Stop().Done()
	return nil
}

// Stop はワーカーを停止し、実行中のジョブの完了を待つ
func (p *Prerenderer) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	<-p.doneCh
}

// RunOnce は事前描画を一回実行し、結果ラベルを返す
func (p *Prerenderer) RunOnce(ctx context.Context) string {
	status := p.run(ctx)
	p.metrics.ObservePrerender(status)
	return status
}

func (p *Prerenderer) run(ctx context.Context) string {
	log := logger.Get()

	if p.locker != nil {
		release, err := p.locker.TryLock(ctx, LockKey, p.cfg.LockTTL)
		if errors.Is(err, redis.ErrLockNotAcquired) {
			log.Debug("他のインスタンスが事前描画中のためスキップ")
			return StatusSkipped
		}
		if err != nil {
			log.Error("事前描画ロックの取得失敗", zap.Error(err))
			return StatusFailed
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				log.Warn("事前描画ロックの解放失敗", zap.Error(err))
			}
		}()
	}

	slugs := p.slugs.GenerateStaticParams(ctx)
	failed := 0
	for _, slug := range slugs {
		err := p.renderOne(ctx, slug)
		switch {
		case errors.Is(err, event.ErrEventNotFound):
			// 一覧取得後に非公開になったイベントは古いページを残さない
			if err := p.store.Invalidate(ctx, slug); err != nil {
				failed++
				log.Error("キャッシュ無効化失敗", zap.String("slug", slug), zap.Error(err))
				continue
			}
			log.Info("イベントが見つからないためキャッシュを削除", zap.String("slug", slug))
		case err != nil:
			failed++
			log.Error("事前描画失敗", zap.String("slug", slug), zap.Error(err))
		}
	}

	if failed > 0 {
		log.Warn("事前描画完了（一部失敗）", zap.Int("total", len(slugs)), zap.Int("failed", failed))
		return StatusFailed
	}
	log.Info("事前描画完了", zap.Int("total", len(slugs)))
	return StatusSuccess
}

func (p *Prerenderer) renderOne(ctx context.Context, slug string) error {
	page, err := p.pages.GetEventPage(ctx, slug)
	if err != nil {
		return err
	}
	html, err := p.renderer.RenderBytes(view.PageEvent, view.Page{Data: view.NewEventView(page, p.cfg.Placeholder)})
	if err != nil {
		return err
	}
	return p.store.SetEventPage(ctx, slug, html, p.cfg.Revalidate)
}
