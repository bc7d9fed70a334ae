package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
	"github.com/sanosuguru/go-event-storefront/internal/domain/schedule"
	"github.com/sanosuguru/go-event-storefront/internal/domain/ticket"
	"github.com/sanosuguru/go-event-storefront/internal/pkg/clock"
)

var testNow = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func newEventPageService() (*EventPageService, *MockEventRepository, *MockTicketRepository, *MockScheduleRepository) {
	eventRepo := new(MockEventRepository)
	ticketRepo := new(MockTicketRepository)
	scheduleRepo := new(MockScheduleRepository)
	svc := NewEventPageService(eventRepo, ticketRepo, scheduleRepo, clock.NewFixed(testNow))
	return svc, eventRepo, ticketRepo, scheduleRepo
}

func rockFest(status event.RegistrationStatus) *event.Event {
	return &event.Event{
		ID:    "ev-1",
		Slug:  "rock-fest-2024",
		Title: "Rock Fest",
		Registration: event.Registration{
			Status: status,
		},
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestEventPageService_GetEventPage_Success(t *testing.T) {
	svc, eventRepo, ticketRepo, scheduleRepo := newEventPageService()

	defs := []*ticket.Definition{
		{ID: "general", Name: "General", LimitPerCheckout: 10},
		{ID: "vip", Name: "VIP", LimitPerCheckout: 4, SalePeriod: &ticket.SalePeriod{
			Start: timePtr(testNow.Add(-time.Hour)),
			End:   timePtr(testNow.Add(time.Hour)),
		}},
		{ID: "early", Name: "Early bird", LimitPerCheckout: 4, SalePeriod: &ticket.SalePeriod{
			Start: timePtr(testNow.Add(-48 * time.Hour)),
			End:   timePtr(testNow),
		}},
		{ID: "guest", Name: "Invitación", LimitPerCheckout: 0},
	}
	items := []*schedule.Item{
		{ID: "s-2", Name: "Cabeza de cartel"},
		{ID: "s-1", Name: "Puertas"},
	}

	eventRepo.On("FindBySlug", mock.Anything, "rock-fest-2024").Return(rockFest(event.StatusOpenTickets), nil)
	ticketRepo.On("ListAvailable", mock.Anything, ticket.Query{
		EventID: "ev-1", Offset: 0, Limit: 100, Sort: "orderIndex:asc",
	}).Return(defs, nil)
	scheduleRepo.On("ListByEvent", mock.Anything, "ev-1", 100).Return(items, nil)

	page, err := svc.GetEventPage(context.Background(), "rock-fest-2024")

	require.NoError(t, err)
	assert.Equal(t, "Rock Fest", page.Event.Title)
	assert.Equal(t, event.Presentation{Hero: event.HeroTickets, ShowTickets: true}, page.Presentation)

	require.Len(t, page.Offers, 4)
	assert.True(t, page.Offers[0].CanPurchase)
	assert.True(t, page.Offers[1].CanPurchase)
	// 販売終了時刻ちょうどは購入不可
	assert.False(t, page.Offers[2].CanPurchase)
	assert.False(t, page.Offers[3].CanPurchase)

	// スケジュールはAPIの返却順のまま
	require.Len(t, page.Schedule, 2)
	assert.Equal(t, "s-2", page.Schedule[0].ID)
	assert.Equal(t, "s-1", page.Schedule[1].ID)

	eventRepo.AssertExpectations(t)
	ticketRepo.AssertExpectations(t)
	scheduleRepo.AssertExpectations(t)
}

func TestEventPageService_GetEventPage_NotFound(t *testing.T) {
	svc, eventRepo, ticketRepo, scheduleRepo := newEventPageService()

	eventRepo.On("FindBySlug", mock.Anything, "missing").Return(nil, event.ErrEventNotFound)

	page, err := svc.GetEventPage(context.Background(), "missing")

	assert.ErrorIs(t, err, event.ErrEventNotFound)
	assert.Nil(t, page)
	// イベントがない場合は券種・スケジュールを問い合わせない
	ticketRepo.AssertNotCalled(t, "ListAvailable", mock.Anything, mock.Anything)
	scheduleRepo.AssertNotCalled(t, "ListByEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventPageService_GetEventPage_Failures(t *testing.T) {
	upstream := errors.New("upstream unavailable")

	tests := []struct {
		name        string
		ticketErr   error
		scheduleErr error
	}{
		{name: "券種の取得に失敗", ticketErr: upstream},
		{name: "スケジュールの取得に失敗", scheduleErr: upstream},
		{name: "両方失敗", ticketErr: upstream, scheduleErr: upstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, eventRepo, ticketRepo, scheduleRepo := newEventPageService()

			eventRepo.On("FindBySlug", mock.Anything, "rock-fest-2024").Return(rockFest(event.StatusOpenTickets), nil)
			if tt.ticketErr != nil {
				ticketRepo.On("ListAvailable", mock.Anything, mock.Anything).Return(nil, tt.ticketErr).Maybe()
			} else {
				ticketRepo.On("ListAvailable", mock.Anything, mock.Anything).Return([]*ticket.Definition{}, nil).Maybe()
			}
			if tt.scheduleErr != nil {
				scheduleRepo.On("ListByEvent", mock.Anything, "ev-1", 100).Return(nil, tt.scheduleErr).Maybe()
			} else {
				scheduleRepo.On("ListByEvent", mock.Anything, "ev-1", 100).Return([]*schedule.Item{}, nil).Maybe()
			}

			page, err := svc.GetEventPage(context.Background(), "rock-fest-2024")

			require.Error(t, err)
			assert.ErrorIs(t, err, upstream)
			assert.Nil(t, page)
		})
	}
}

func TestEventPageService_GetEventPage_EventError(t *testing.T) {
	svc, eventRepo, _, _ := newEventPageService()
	upstream := errors.New("boom")

	eventRepo.On("FindBySlug", mock.Anything, "rock-fest-2024").Return(nil, upstream)

	_, err := svc.GetEventPage(context.Background(), "rock-fest-2024")

	assert.ErrorIs(t, err, upstream)
}

func TestEventPageService_GetEventPage_Presentation(t *testing.T) {
	tests := []struct {
		name   string
		status event.RegistrationStatus
		want   event.Presentation
	}{
		{"外部申し込み", event.StatusOpenExternal, event.Presentation{Hero: event.HeroExternal}},
		{"手動で締め切り", event.StatusClosedManually, event.Presentation{Hero: event.HeroSoldOut, ShowTickets: true}},
		{"自動で締め切り", event.StatusClosedAutomatically, event.Presentation{Hero: event.HeroSoldOut}},
		{"RSVP", event.StatusOpenRSVP, event.Presentation{Hero: event.HeroNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, eventRepo, ticketRepo, scheduleRepo := newEventPageService()
			ev := rockFest(tt.status)
			ev.Registration.ExternalURL = "https://tickets.example.com/rock-fest"

			eventRepo.On("FindBySlug", mock.Anything, "rock-fest-2024").Return(ev, nil)
			ticketRepo.On("ListAvailable", mock.Anything, mock.Anything).Return([]*ticket.Definition{}, nil)
			scheduleRepo.On("ListByEvent", mock.Anything, "ev-1", 100).Return([]*schedule.Item{}, nil)

			page, err := svc.GetEventPage(context.Background(), "rock-fest-2024")

			require.NoError(t, err)
			assert.Equal(t, tt.want, page.Presentation)
			assert.Empty(t, page.Schedule)
			assert.Empty(t, page.Offers)
		})
	}
}
