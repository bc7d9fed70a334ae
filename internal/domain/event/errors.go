package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrEventNotFound        = errors.New("イベントが見つかりません")
	ErrEventIdentityMissing = errors.New("イベントのIDまたはスラッグがありません")
	ErrExternalURLMissing   = errors.New("外部申し込みのURLがありません")
)
