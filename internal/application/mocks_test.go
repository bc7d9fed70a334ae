package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
	"github.com/sanosuguru/go-event-storefront/internal/domain/schedule"
	"github.com/sanosuguru/go-event-storefront/internal/domain/ticket"
)

// MockEventRepository はevent.Repositoryのモック
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindBySlug(ctx context.Context, slug string) (*event.Event, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventRepository) ListUpcoming(ctx context.Context, limit int) ([]*event.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

// MockTicketRepository はticket.Repositoryのモック
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) ListAvailable(ctx context.Context, q ticket.Query) ([]*ticket.Definition, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Definition), args.Error(1)
}

// MockScheduleRepository はschedule.Repositoryのモック
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) ListByEvent(ctx context.Context, eventID string, limit int) ([]*schedule.Item, error) {
	args := m.Called(ctx, eventID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedule.Item), args.Error(1)
}
