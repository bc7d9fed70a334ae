package handler

import (
	"context"

	"github.com/sanosuguru/go-event-storefront/internal/application"
	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

// EventPageServiceInterface はイベント詳細ページのデータ取得
type EventPageServiceInterface interface {
	GetEventPage(ctx context.Context, slug string) (*application.EventPage, error)
}

// CatalogServiceInterface はイベント一覧と単体取得
type CatalogServiceInterface interface {
	ListUpcoming(ctx context.Context, limit int) ([]*event.Event, error)
	GetEvent(ctx context.Context, slug string) (*event.Event, error)
}

// StaticParamsServiceInterface は事前生成するスラッグの列挙
type StaticParamsServiceInterface interface {
	GenerateStaticParams(ctx context.Context) []string
}

// PageCache は事前描画済みページの読み出し
type PageCache interface {
	GetEventPage(ctx context.Context, slug string) ([]byte, error)
}
