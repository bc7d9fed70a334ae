package application

import (
	"context"
	"fmt"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

const defaultCatalogLimit = 10

// CatalogService はトップページのイベント一覧を提供する
type CatalogService struct {
	eventRepo event.Repository
}

func NewCatalogService(eventRepo event.Repository) *CatalogService {
	return &CatalogService{eventRepo: eventRepo}
}

// ListUpcoming は開始日時の昇順でイベントを返す
func (s *CatalogService) ListUpcoming(ctx context.Context, limit int) ([]*event.Event, error) {
	if limit <= 0 {
		limit = defaultCatalogLimit
	}
	if limit > 100 {
		limit = 100
	}
	events, err := s.eventRepo.ListUpcoming(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("イベント一覧の取得に失敗しました: %w", err)
	}
	return events, nil
}

// GetEvent はスラッグに一致するイベントのみを取得する（券種・スケジュールは取得しない）
func (s *CatalogService) GetEvent(ctx context.Context, slug string) (*event.Event, error) {
	return s.eventRepo.FindBySlug(ctx, slug)
}
