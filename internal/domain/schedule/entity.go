package schedule

import "time"

// Item はイベントのスケジュール項目。APIの返却順で表示する
type Item struct {
	ID          string
	EventID     string
	Name        string
	Description string
	Start       time.Time
	End         time.Time
	TimeZoneID  string
	Stage       string
	Tags        []string
}

// HasTimeSlot は開始・終了時刻が揃っているかどうかを返す
func (i *Item) HasTimeSlot() bool {
	return !i.Start.IsZero() && !i.End.IsZero()
}
