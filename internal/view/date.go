package view

import (
	"fmt"
	"time"
	// 実行環境にタイムゾーンDBがなくてもIANA名を解決できるようにする
	_ "time/tzdata"
)

var shortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// FormatDate は t を tz のタイムゾーンで "12 oct 2024, 21:00" の形式に整形する
// t がゼロ値、tz が空または不明な場合は空文字を返す（呼び出し側でAPIの整形済み文字列に切り替える）
func FormatDate(t time.Time, tz string) string {
	local, ok := inZone(t, tz)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %s %d, %02d:%02d",
		local.Day(), shortMonths[local.Month()-1], local.Year(), local.Hour(), local.Minute())
}

// FormatTimeRange はスケジュール用に "21:00 - 22:30" を返す
func FormatTimeRange(start, end time.Time, tz string) string {
	s, ok := inZone(start, tz)
	if !ok {
		return ""
	}
	e, ok := inZone(end, tz)
	if !ok {
		return fmt.Sprintf("%02d:%02d", s.Hour(), s.Minute())
	}
	return fmt.Sprintf("%02d:%02d - %02d:%02d", s.Hour(), s.Minute(), e.Hour(), e.Minute())
}

func inZone(t time.Time, tz string) (time.Time, bool) {
	if t.IsZero() || tz == "" {
		return time.Time{}, false
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}
