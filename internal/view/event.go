package view

import (
	"html/template"
	"net/url"

	"github.com/sanosuguru/go-event-storefront/internal/application"
	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

const (
	heroImageSize = 530
	cardImageSize = 360
)

// EventView はイベント詳細ページの表示モデル
type EventView struct {
	Slug             string
	Title            string
	ShortDescription string
	Image            template.HTML
	// HeroDate は "12 oct 2024, 21:00" または API の整形済み開始日
	HeroDate     string
	LocationName string

	Hero        event.HeroCTA
	TicketsURL  string
	ExternalURL string
	CalendarURL string

	DateAndTime string
	Address     string

	ShowDescription     bool
	DetailedDescription template.HTML

	Schedule []ScheduleRow
	// AgendaURL はWix側のアジェンダページ。無効な場合は空
	AgendaURL string

	ShowSecondaryExternal bool
	ShowTickets           bool
	Tickets               TicketsTable
}

// ShowSchedule はスケジュール欄を表示するかどうかを返す
func (v *EventView) ShowSchedule() bool {
	return len(v.Schedule) > 0
}

// NewEventView は取得済みのページデータから表示モデルを作る
func NewEventView(page *application.EventPage, placeholder string) *EventView {
	ev := page.Event
	escaped := url.PathEscape(ev.Slug)

	heroDate := FormatDate(ev.DateAndTime.StartDate, ev.DateAndTime.TimeZoneID)
	if heroDate == "" {
		heroDate = ev.DateAndTime.Formatted.StartDate
	}

	v := &EventView{
		Slug:             ev.Slug,
		Title:            ev.Title,
		ShortDescription: ev.ShortDescription,
		Image: MediaImage(ev.MainImage, heroImageSize, heroImageSize,
			"max-h-[320px] sm:h-[530px] sm:max-h-[530px]", placeholder),
		HeroDate:     heroDate,
		LocationName: ev.Location.Name,

		Hero:        page.Presentation.Hero,
		TicketsURL:  "/events/" + escaped + "#tickets",
		ExternalURL: ev.Registration.ExternalURL,
		CalendarURL: "/events/" + escaped + "/calendar.ics",

		DateAndTime: ev.DateAndTime.Formatted.DateAndTime,
		Address:     ev.Location.Address,

		ShowDescription: ev.HasDetailedDescription(),
		// 詳細説明はWix側で作成されたリッチテキストをそのまま出力する
		DetailedDescription: template.HTML(ev.DetailedDescription),

		Schedule:  NewScheduleRows(page.Schedule, ev.DateAndTime.TimeZoneID),
		AgendaURL: ev.AgendaURL(),

		ShowSecondaryExternal: ev.HasExternalRegistration(),
		ShowTickets:           page.Presentation.ShowTickets,
	}
	if v.ShowTickets {
		v.Tickets = NewTicketsTable(ev.Slug, page.Offers)
	}
	return v
}

// EventCard はトップページのイベント一覧の1件
type EventCard struct {
	Slug     string
	Title    string
	URL      string
	Date     string
	Location string
	Image    template.HTML
	SoldOut  bool
}

// HomeView はトップページの表示モデル
type HomeView struct {
	Events []EventCard
}

// NewHomeView はイベント一覧からトップページの表示モデルを作る
func NewHomeView(events []*event.Event, placeholder string) *HomeView {
	cards := make([]EventCard, 0, len(events))
	for _, ev := range events {
		date := FormatDate(ev.DateAndTime.StartDate, ev.DateAndTime.TimeZoneID)
		if date == "" {
			date = ev.DateAndTime.Formatted.StartDate
		}
		cards = append(cards, EventCard{
			Slug:     ev.Slug,
			Title:    ev.Title,
			URL:      "/events/" + url.PathEscape(ev.Slug),
			Date:     date,
			Location: ev.Location.Name,
			Image:    MediaImage(ev.MainImage, cardImageSize, cardImageSize, "w-full", placeholder),
			SoldOut:  ev.Presentation().Hero.IsSoldOut(),
		})
	}
	return &HomeView{Events: cards}
}

// ErrorView はエラーページの表示モデル
type ErrorView struct {
	Status  int
	Message string
}
