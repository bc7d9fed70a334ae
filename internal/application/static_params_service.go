package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/logger"
)

// staticParamsLimit は事前生成するイベントページの上限
const staticParamsLimit = 10

// StaticParamsService は事前生成するイベントページのスラッグを列挙する
type StaticParamsService struct {
	eventRepo event.Repository
}

func NewStaticParamsService(eventRepo event.Repository) *StaticParamsService {
	return &StaticParamsService{eventRepo: eventRepo}
}

// GenerateStaticParams は開始日時の早い順に最大10件のスラッグを返す
// 取得に失敗した場合はログを出力し、空のスライスを返す
func (s *StaticParamsService) GenerateStaticParams(ctx context.Context) []string {
	events, err := s.eventRepo.ListUpcoming(ctx, staticParamsLimit)
	if err != nil {
		logger.Error("事前生成するイベントの取得に失敗しました", zap.Error(err))
		return []string{}
	}

	slugs := make([]string, 0, len(events))
	for _, e := range events {
		slugs = append(slugs, e.Slug)
	}
	return slugs
}
