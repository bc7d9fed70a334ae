package application

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
	"github.com/sanosuguru/go-event-storefront/internal/domain/schedule"
	"github.com/sanosuguru/go-event-storefront/internal/domain/ticket"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/clock"
)

const (
	ticketPageLimit   = 100
	ticketSort        = "orderIndex:asc"
	schedulePageLimit = 100
)

// EventPage はイベント詳細ページの描画に必要なデータ
type EventPage struct {
	Event        *event.Event
	Offers       []ticket.Offer
	Schedule     []*schedule.Item
	Presentation event.Presentation
}

// EventPageService はイベント詳細ページのデータを組み立てる
type EventPageService struct {
	eventRepo    event.Repository
	ticketRepo   ticket.Repository
	scheduleRepo schedule.Repository
	clock        clock.Clock
}

func NewEventPageService(eventRepo event.Repository, ticketRepo ticket.Repository, scheduleRepo schedule.Repository, clk clock.Clock) *EventPageService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &EventPageService{
		eventRepo:    eventRepo,
		ticketRepo:   ticketRepo,
		scheduleRepo: scheduleRepo,
		clock:        clk,
	}
}

// GetEventPage はスラッグに一致するイベントと、その券種・スケジュールを取得する
// イベントが存在しない場合は event.ErrEventNotFound を返す
func (s *EventPageService) GetEventPage(ctx context.Context, slug string) (*EventPage, error) {
	ev, err := s.eventRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var (
		defs  []*ticket.Definition
		items []*schedule.Item
	)

	// 券種とスケジュールは並行に取得し、どちらかが失敗した時点で打ち切る
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		res, err := s.ticketRepo.ListAvailable(ctx, ticket.Query{
			EventID: ev.ID,
			Offset:  0,
			Limit:   ticketPageLimit,
			Sort:    ticketSort,
		})
		if err != nil {
			return fmt.Errorf("券種の取得に失敗しました: %w", err)
		}
		defs = res
		return nil
	})
	p.Go(func(ctx context.Context) error {
		res, err := s.scheduleRepo.ListByEvent(ctx, ev.ID, schedulePageLimit)
		if err != nil {
			return fmt.Errorf("スケジュールの取得に失敗しました: %w", err)
		}
		items = res
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return &EventPage{
		Event:        ev,
		Offers:       ticket.NewOffers(defs, s.clock.Now()),
		Schedule:     items,
		Presentation: ev.Presentation(),
	}, nil
}
