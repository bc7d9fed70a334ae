package wix

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sanosuguru/go-event-storefront/internal/domain/schedule"
)

const listSchedulePath = "/events/v1/schedule"

type listScheduleResponse struct {
	Items []scheduleItemDTO `json:"items"`
}

// ScheduleRepository はスケジュールリポジトリのWix実装
type ScheduleRepository struct {
	client *Client
}

// NewScheduleRepository はScheduleRepositoryを作成する
func NewScheduleRepository(client *Client) *ScheduleRepository {
	return &ScheduleRepository{client: client}
}

// ListByEvent はイベントのスケジュール項目を取得する
func (r *ScheduleRepository) ListByEvent(ctx context.Context, eventID string, limit int) ([]*schedule.Item, error) {
	query := url.Values{}
	query.Set("eventId", eventID)
	query.Set("limit", strconv.Itoa(limit))

	var resp listScheduleResponse
	if err := r.client.do(ctx, "list_schedule", http.MethodGet, listSchedulePath, query, nil, &resp); err != nil {
		return nil, err
	}

	items := make([]*schedule.Item, 0, len(resp.Items))
	for i := range resp.Items {
		item, err := resp.Items[i].toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

var _ schedule.Repository = (*ScheduleRepository)(nil)
