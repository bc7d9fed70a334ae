package wix

import (
	"context"
	"net/http"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

const queryEventsPath = "/events/v3/events/query"

// 詳細ページで要求する項目
var eventPageFields = []string{"DETAILS", "TEXTS", "REGISTRATION", "AGENDA"}

type queryEventsRequest struct {
	Query  eventQuery `json:"query"`
	Fields []string   `json:"fields,omitempty"`
}

type eventQuery struct {
	Filter       map[string]any `json:"filter,omitempty"`
	Sort         []sortSpec     `json:"sort,omitempty"`
	CursorPaging cursorPaging   `json:"cursorPaging"`
}

type sortSpec struct {
	FieldName string `json:"fieldName"`
	Order     string `json:"order"`
}

type cursorPaging struct {
	Limit int `json:"limit"`
}

type queryEventsResponse struct {
	Events []eventDTO `json:"events"`
}

// EventRepository はイベントリポジトリのWix実装
type EventRepository struct {
	client *Client
}

// NewEventRepository はEventRepositoryを作成する
func NewEventRepository(client *Client) *EventRepository {
	return &EventRepository{client: client}
}

// FindBySlug はスラッグに完全一致するイベントを1件取得する
func (r *EventRepository) FindBySlug(ctx context.Context, slug string) (*event.Event, error) {
	req := queryEventsRequest{
		Query: eventQuery{
			Filter:       map[string]any{"slug": map[string]string{"$eq": slug}},
			CursorPaging: cursorPaging{Limit: 1},
		},
		Fields: eventPageFields,
	}

	var resp queryEventsResponse
	if err := r.client.do(ctx, "query_events", http.MethodPost, queryEventsPath, nil, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Events) == 0 {
		return nil, event.ErrEventNotFound
	}
	return resp.Events[0].toEntity()
}

// ListUpcoming は開始日時の昇順でイベントを取得する
func (r *EventRepository) ListUpcoming(ctx context.Context, limit int) ([]*event.Event, error) {
	req := queryEventsRequest{
		Query: eventQuery{
			Sort:         []sortSpec{{FieldName: "dateAndTimeSettings.startDate", Order: "ASC"}},
			CursorPaging: cursorPaging{Limit: limit},
		},
	}

	var resp queryEventsResponse
	if err := r.client.do(ctx, "list_events", http.MethodPost, queryEventsPath, nil, req, &resp); err != nil {
		return nil, err
	}

	events := make([]*event.Event, 0, len(resp.Events))
	for i := range resp.Events {
		e, err := resp.Events[i].toEntity()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// インターフェースを満たしているか確認
var _ event.Repository = (*EventRepository)(nil)
