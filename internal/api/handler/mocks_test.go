package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-storefront/internal/application"
	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

// MockEventPageService はEventPageServiceInterfaceのモック
type MockEventPageService struct {
	mock.Mock
}

func (m *MockEventPageService) GetEventPage(ctx context.Context, slug string) (*application.EventPage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.EventPage), args.Error(1)
}

// MockCatalogService はCatalogServiceInterfaceのモック
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListUpcoming(ctx context.Context, limit int) ([]*event.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockCatalogService) GetEvent(ctx context.Context, slug string) (*event.Event, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

// MockStaticParamsService はStaticParamsServiceInterfaceのモック
type MockStaticParamsService struct {
	mock.Mock
}

func (m *MockStaticParamsService) GenerateStaticParams(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

// MockPageCache はPageCacheのモック
type MockPageCache struct {
	mock.Mock
}

func (m *MockPageCache) GetEventPage(ctx context.Context, slug string) ([]byte, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
