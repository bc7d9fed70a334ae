package schedule

import "context"

// Repository はスケジュールの読み取りインターフェース
type Repository interface {
	// ListByEvent はイベントのスケジュール項目を取得する
	ListByEvent(ctx context.Context, eventID string, limit int) ([]*Item, error)
}
