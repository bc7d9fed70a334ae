// Package calendar はイベントをiCalendar形式で書き出す
package calendar

import (
	"errors"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

// ContentType はレスポンスのContent-Type
const ContentType = "text/calendar; charset=utf-8"

const productID = "-//go-event-storefront//ES"

// ErrNoStartDate は開始日時がないイベントを書き出そうとした場合のエラー
var ErrNoStartDate = errors.New("イベントに開始日時がありません")

// Export はイベント1件を含むVCALENDARを返す
// eventURL はイベントページの絶対URL、stamp はDTSTAMPに使う時刻
func Export(ev *event.Event, eventURL string, stamp time.Time) (string, error) {
	if ev.DateAndTime.StartDate.IsZero() {
		return "", ErrNoStartDate
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(ev.Title)

	vevent := cal.AddEvent(ev.ID)
	vevent.SetDtStampTime(stamp)
	vevent.SetStartAt(ev.DateAndTime.StartDate)
	if end := ev.DateAndTime.EndDate; !end.IsZero() && end.After(ev.DateAndTime.StartDate) {
		vevent.SetEndAt(end)
	}
	vevent.SetSummary(ev.Title)
	if ev.ShortDescription != "" {
		vevent.SetDescription(ev.ShortDescription)
	}
	if loc := location(ev.Location); loc != "" {
		vevent.SetLocation(loc)
	}
	if eventURL != "" {
		vevent.SetURL(eventURL)
	}

	return cal.Serialize(), nil
}

func location(l event.Location) string {
	parts := make([]string, 0, 2)
	if l.Name != "" {
		parts = append(parts, l.Name)
	}
	if l.Address != "" {
		parts = append(parts, l.Address)
	}
	return strings.Join(parts, ", ")
}
