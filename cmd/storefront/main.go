package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-storefront/internal/api"
	"github.com/sanosuguru/go-event-storefront/internal/api/middleware"
	"github.com/sanosuguru/go-event-storefront/internal/application"
	"github.com/sanosuguru/go-event-storefront/internal/config"
	"github.com/sanosuguru/go-event-storefront/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-storefront/internal/infrastructure/wix"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/clock"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/logger"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-storefront/internal/view"
	"github.com/sanosuguru/go-event-storefront/internal/worker"
)

// redisConnectAttempts は起動時のRedis接続試行回数
const redisConnectAttempts = 5

func main() {
	// .env は開発用。存在しなくてもよい
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Set(logger.NewLoggerWithOptions(cfg.Env, logger.Options{File: cfg.Log.File}))
	defer func() { _ = logger.Sync() }()

	if err := run(cfg); err != nil {
		logger.Fatal("起動に失敗しました", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	mode, err := cfg.Validate()
	if err != nil {
		return err
	}
	if mode == config.ModeUnconfigured {
		logger.Warn(config.ClientIDEnv + " が未設定のため案内ページのみを返します")
	}

	m := metrics.Init()

	site, err := config.LoadSite(cfg.SiteFile)
	if err != nil {
		return err
	}
	renderer, err := view.NewRenderer(site)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Dependencies{
		Mode:        mode,
		Config:      cfg,
		Renderer:    renderer,
		Metrics:     m,
		MetricsAuth: middleware.LoadMetricsConfig(),
		Clock:       clock.NewSystem(),
	}

	var prerenderer *worker.Prerenderer
	if mode == config.ModeConfigured {
		client := wix.NewClient(&cfg.Wix, wix.WithMetrics(m))
		eventRepo := wix.NewEventRepository(client)

		pages := application.NewEventPageService(
			eventRepo,
			wix.NewTicketRepository(client),
			wix.NewScheduleRepository(client),
			deps.Clock,
		)
		staticParams := application.NewStaticParamsService(eventRepo)

		deps.EventPages = pages
		deps.Catalog = application.NewCatalogService(eventRepo)
		deps.StaticParams = staticParams

		if cfg.Render.CacheEnabled() {
			rdb, err := redis.Connect(ctx, &cfg.Redis, redisConnectAttempts)
			if err != nil {
				return fmt.Errorf("Redisへの接続に失敗しました: %w", err)
			}
			defer rdb.Close()

			cache := redis.NewPageCache(rdb)
			deps.PageCache = cache
			prerenderer = worker.NewPrerenderer(
				staticParams,
				pages,
				cache,
				renderer,
				worker.NewRedisLocker(redis.NewLockManager(rdb)),
				m,
				worker.PrerendererConfig{
					Schedule:    cfg.Render.PrerenderSchedule,
					Revalidate:  cfg.Render.Revalidate,
					LockTTL:     cfg.Render.PrerenderLockTTL,
					Placeholder: site.PlaceholderImage,
				},
			)
		}
	}

	e := api.NewRouter(deps)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	if prerenderer != nil {
		go func() {
			if err := prerenderer.Start(ctx); err != nil {
				logger.Error("事前描画ワーカーの起動に失敗しました", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("サーバー起動",
			zap.String("port", cfg.Server.Port),
			zap.String("mode", string(mode)),
			zap.Bool("prerender", prerenderer != nil),
		)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("サーバー起動エラー", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("サーバーをシャットダウンしています...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if prerenderer != nil {
		prerenderer.Stop()
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("サーバーシャットダウンエラー: %w", err)
	}

	logger.Info("サーバーが正常にシャットダウンしました")
	return nil
}
