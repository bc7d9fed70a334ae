package event

import "time"

// Event は外部APIから取得したイベントを表す。ローカルには保存しない
type Event struct {
	ID                  string
	Slug                string
	Title               string
	ShortDescription    string
	DetailedDescription string
	MainImage           *Image
	DateAndTime         DateAndTime
	Location            Location
	Registration        Registration
	Agenda              Agenda
}

// Image はメディア画像の参照
type Image struct {
	ID     string
	URL    string
	Width  int
	Height int
	Alt    string
}

// DateAndTime はイベントの日時設定
type DateAndTime struct {
	StartDate  time.Time
	EndDate    time.Time
	TimeZoneID string
	Formatted  FormattedDates
}

// FormattedDates はAPI側で整形済みの日時文字列
type FormattedDates struct {
	DateAndTime string
	StartDate   string
	StartTime   string
	EndDate     string
	EndTime     string
}

// Location は開催場所
type Location struct {
	Name    string
	Address string
}

// Registration は申し込み状態
type Registration struct {
	Status      RegistrationStatus
	ExternalURL string
}

// Agenda はアジェンダ設定
type Agenda struct {
	Enabled bool
	PageURL string
}

// AgendaURL はアジェンダが有効な場合にそのページのURLを返す
func (e *Event) AgendaURL() string {
	if !e.Agenda.Enabled {
		return ""
	}
	return e.Agenda.PageURL
}

// emptyRichText はAPIが空の詳細説明として返す値
const emptyRichText = "<p></p>"

// HasDetailedDescription は詳細説明を表示すべきかどうかを返す
func (e *Event) HasDetailedDescription() bool {
	return e.DetailedDescription != "" && e.DetailedDescription != emptyRichText
}

// HasExternalRegistration は外部の申し込みURLがあるかどうかを返す
func (e *Event) HasExternalRegistration() bool {
	return e.Registration.ExternalURL != ""
}

// Presentation は申し込み状態に応じた表示を返す
func (e *Event) Presentation() Presentation {
	return Present(e.Registration.Status)
}

// Validate はイベントの検証を行う
func (e *Event) Validate() error {
	if e.ID == "" || e.Slug == "" {
		return ErrEventIdentityMissing
	}
	if e.Registration.Status == StatusOpenExternal && e.Registration.ExternalURL == "" {
		return ErrExternalURLMissing
	}
	return nil
}
