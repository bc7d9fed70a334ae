package event

import "context"

// Repository はイベントの読み取りインターフェース
type Repository interface {
	// FindBySlug はスラッグに完全一致するイベントを1件取得する
	FindBySlug(ctx context.Context, slug string) (*Event, error)
	// ListUpcoming は開始日時の昇順でイベントを取得する
	ListUpcoming(ctx context.Context, limit int) ([]*Event, error)
}
