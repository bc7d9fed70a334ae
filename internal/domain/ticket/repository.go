package ticket

import "context"

// Query は券種一覧の取得条件
type Query struct {
	EventID string
	Offset  int
	Limit   int
	// Sort は "orderIndex:asc" 形式
	Sort string
}

// Repository は券種の読み取りインターフェース
type Repository interface {
	// ListAvailable は購入可能な券種の定義を取得する
	ListAvailable(ctx context.Context, q Query) ([]*Definition, error)
}
