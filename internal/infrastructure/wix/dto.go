package wix

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
	"github.com/sanosuguru/go-event-storefront/internal/domain/schedule"
	"github.com/sanosuguru/go-event-storefront/internal/domain/ticket"
)

var validate = validator.New()

// eventDTO はEvents V3 APIのイベント
// 任意項目はポインタで受け、必須項目は validate タグで検証する
type eventDTO struct {
	ID                  string             `json:"id" validate:"required"`
	Slug                string             `json:"slug" validate:"required"`
	Title               string             `json:"title" validate:"required"`
	ShortDescription    *string            `json:"shortDescription"`
	DetailedDescription *string            `json:"detailedDescription"`
	MainImage           *imageDTO          `json:"mainImage"`
	DateAndTimeSettings *dateAndTimeDTO    `json:"dateAndTimeSettings"`
	Location            *locationDTO       `json:"location"`
	Registration        *registrationDTO   `json:"registration"`
	AgendaSettings      *agendaSettingsDTO `json:"agendaSettings"`
}

type imageDTO struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	AltText string `json:"altText"`
}

type dateAndTimeDTO struct {
	StartDate  *time.Time         `json:"startDate"`
	EndDate    *time.Time         `json:"endDate"`
	TimeZoneID *string            `json:"timeZoneId"`
	Formatted  *formattedDatesDTO `json:"formatted"`
}

type formattedDatesDTO struct {
	DateAndTime string `json:"dateAndTime"`
	StartDate   string `json:"startDate"`
	StartTime   string `json:"startTime"`
	EndDate     string `json:"endDate"`
	EndTime     string `json:"endTime"`
}

type locationDTO struct {
	Name    *string     `json:"name"`
	Address *addressDTO `json:"address"`
}

type addressDTO struct {
	Formatted string `json:"formatted"`
}

type registrationDTO struct {
	Status   *string      `json:"status"`
	External *externalDTO `json:"external"`
}

type externalDTO struct {
	URL *string `json:"url"`
}

type agendaSettingsDTO struct {
	Enabled bool   `json:"enabled"`
	PageURL string `json:"pageUrl"`
}

func (d *eventDTO) toEntity() (*event.Event, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("イベント %q: %w", d.ID, errors.Join(ErrMalformedResponse, err))
	}

	e := &event.Event{
		ID:                  d.ID,
		Slug:                d.Slug,
		Title:               d.Title,
		ShortDescription:    deref(d.ShortDescription),
		DetailedDescription: deref(d.DetailedDescription),
		Registration:        event.Registration{Status: event.StatusUnknown},
	}

	if d.MainImage != nil {
		e.MainImage = &event.Image{
			ID:     d.MainImage.ID,
			URL:    d.MainImage.URL,
			Width:  d.MainImage.Width,
			Height: d.MainImage.Height,
			Alt:    d.MainImage.AltText,
		}
	}

	if dt := d.DateAndTimeSettings; dt != nil {
		if dt.StartDate != nil {
			e.DateAndTime.StartDate = *dt.StartDate
		}
		if dt.EndDate != nil {
			e.DateAndTime.EndDate = *dt.EndDate
		}
		e.DateAndTime.TimeZoneID = deref(dt.TimeZoneID)
		if f := dt.Formatted; f != nil {
			e.DateAndTime.Formatted = event.FormattedDates{
				DateAndTime: f.DateAndTime,
				StartDate:   f.StartDate,
				StartTime:   f.StartTime,
				EndDate:     f.EndDate,
				EndTime:     f.EndTime,
			}
		}
	}

	if loc := d.Location; loc != nil {
		e.Location.Name = deref(loc.Name)
		if loc.Address != nil {
			e.Location.Address = loc.Address.Formatted
		}
	}

	if reg := d.Registration; reg != nil {
		if reg.Status != nil {
			e.Registration.Status = event.ParseRegistrationStatus(*reg.Status)
		}
		if reg.External != nil {
			e.Registration.ExternalURL = deref(reg.External.URL)
		}
	}

	if d.AgendaSettings != nil {
		e.Agenda = event.Agenda{Enabled: d.AgendaSettings.Enabled, PageURL: d.AgendaSettings.PageURL}
	}

	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("イベント %q: %w", d.ID, err)
	}
	return e, nil
}

// ticketDefinitionDTO は購入可能な券種の定義
type ticketDefinitionDTO struct {
	ID               string         `json:"id" validate:"required"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Free             bool           `json:"free"`
	Price            *moneyDTO      `json:"price"`
	LimitPerCheckout *int           `json:"limitPerCheckout"`
	OrderIndex       int            `json:"orderIndex"`
	SalePeriod       *salePeriodDTO `json:"salePeriod"`
	SaleStatus       string         `json:"saleStatus"`
}

type moneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type salePeriodDTO struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (d *ticketDefinitionDTO) toEntity() (*ticket.Definition, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("券種: %w", errors.Join(ErrMalformedResponse, err))
	}

	def := &ticket.Definition{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Free:        d.Free,
		OrderIndex:  d.OrderIndex,
		SaleStatus:  d.SaleStatus,
	}
	// 上限が返らない場合は購入不可として扱う
	if d.LimitPerCheckout != nil {
		def.LimitPerCheckout = *d.LimitPerCheckout
	}
	if d.Price != nil {
		def.Price = ticket.Price{Amount: d.Price.Amount, Currency: d.Price.Currency}
	}
	if d.SalePeriod != nil {
		def.SalePeriod = &ticket.SalePeriod{Start: d.SalePeriod.StartDate, End: d.SalePeriod.EndDate}
	}
	return def, nil
}

// scheduleItemDTO はスケジュール項目
type scheduleItemDTO struct {
	ID          string       `json:"id" validate:"required"`
	EventID     string       `json:"eventId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	TimeSlot    *timeSlotDTO `json:"timeSlot"`
	StageName   string       `json:"stageName"`
	Tags        []string     `json:"tags"`
}

type timeSlotDTO struct {
	Start      *time.Time `json:"start"`
	End        *time.Time `json:"end"`
	TimeZoneID string     `json:"timeZoneId"`
}

func (d *scheduleItemDTO) toEntity() (*schedule.Item, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("スケジュール項目: %w", errors.Join(ErrMalformedResponse, err))
	}

	item := &schedule.Item{
		ID:          d.ID,
		EventID:     d.EventID,
		Name:        d.Name,
		Description: d.Description,
		Stage:       d.StageName,
		Tags:        d.Tags,
	}
	if ts := d.TimeSlot; ts != nil {
		if ts.Start != nil {
			item.Start = *ts.Start
		}
		if ts.End != nil {
			item.End = *ts.End
		}
		item.TimeZoneID = ts.TimeZoneID
	}
	return item, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
