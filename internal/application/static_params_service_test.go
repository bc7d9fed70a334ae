package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

func TestStaticParamsService_GenerateStaticParams(t *testing.T) {
	t.Run("開始日時の順にスラッグを返す", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewStaticParamsService(repo)

		repo.On("ListUpcoming", mock.Anything, 10).Return([]*event.Event{
			{ID: "ev-1", Slug: "rock-fest-2024"},
			{ID: "ev-2", Slug: "jazz-night"},
		}, nil)

		slugs := svc.GenerateStaticParams(context.Background())

		assert.Equal(t, []string{"rock-fest-2024", "jazz-night"}, slugs)
		repo.AssertExpectations(t)
	})

	t.Run("イベントがない場合は空", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewStaticParamsService(repo)

		repo.On("ListUpcoming", mock.Anything, 10).Return([]*event.Event{}, nil)

		slugs := svc.GenerateStaticParams(context.Background())

		assert.NotNil(t, slugs)
		assert.Empty(t, slugs)
	})

	t.Run("取得失敗時は空のスライスを返す", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewStaticParamsService(repo)

		repo.On("ListUpcoming", mock.Anything, 10).Return(nil, errors.New("upstream down"))

		slugs := svc.GenerateStaticParams(context.Background())

		assert.NotNil(t, slugs)
		assert.Empty(t, slugs)
	})
}
