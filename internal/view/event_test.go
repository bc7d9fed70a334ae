package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

func TestNewEventView(t *testing.T) {
	t.Run("チケット販売中", func(t *testing.T) {
		v := NewEventView(testEventPage(event.StatusOpenTickets), testPlaceholder)

		assert.Equal(t, "rock-fest-2024", v.Slug)
		assert.Equal(t, "12 oct 2024, 21:00", v.HeroDate)
		assert.Equal(t, "/events/rock-fest-2024#tickets", v.TicketsURL)
		assert.Equal(t, "/events/rock-fest-2024/calendar.ics", v.CalendarURL)
		assert.True(t, v.Hero.IsTickets())
		assert.True(t, v.ShowTickets)
		assert.Len(t, v.Tickets.Rows, 2)
		assert.True(t, v.ShowSchedule())
		assert.True(t, v.ShowDescription)
		assert.False(t, v.ShowSecondaryExternal)
		assert.Empty(t, v.AgendaURL)
	})

	t.Run("アジェンダが有効ならURLを持つ", func(t *testing.T) {
		page := testEventPage(event.StatusOpenTickets)
		page.Event.Agenda = event.Agenda{Enabled: true, PageURL: "https://otein.example.com/agenda"}

		v := NewEventView(page, testPlaceholder)

		assert.Equal(t, "https://otein.example.com/agenda", v.AgendaURL)
	})

	t.Run("自動締め切りはチケット表を作らない", func(t *testing.T) {
		v := NewEventView(testEventPage(event.StatusClosedAutomatically), testPlaceholder)

		assert.True(t, v.Hero.IsSoldOut())
		assert.False(t, v.ShowTickets)
		assert.Empty(t, v.Tickets.Rows)
	})

	t.Run("スラッグはエスケープする", func(t *testing.T) {
		page := testEventPage(event.StatusOpenTickets)
		page.Event.Slug = "noche de rock"

		v := NewEventView(page, testPlaceholder)

		assert.Equal(t, "/events/noche%20de%20rock#tickets", v.TicketsURL)
	})
}
