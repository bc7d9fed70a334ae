package view

import (
	"github.com/sanosuguru/go-event-storefront/internal/domain/schedule"
)

// ScheduleRow はスケジュールの1行
type ScheduleRow struct {
	TimeRange   string
	Name        string
	Description string
	Stage       string
	Tags        []string
}

// NewScheduleRows はAPIの返却順のまま表示行に変換する
// 項目にタイムゾーンがない場合は fallbackTZ（イベントのタイムゾーン）を使う
func NewScheduleRows(items []*schedule.Item, fallbackTZ string) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(items))
	for _, it := range items {
		tz := it.TimeZoneID
		if tz == "" {
			tz = fallbackTZ
		}
		row := ScheduleRow{
			Name:        it.Name,
			Description: it.Description,
			Stage:       it.Stage,
			Tags:        it.Tags,
		}
		if it.HasTimeSlot() {
			row.TimeRange = FormatTimeRange(it.Start, it.End, tz)
		}
		rows = append(rows, row)
	}
	return rows
}
