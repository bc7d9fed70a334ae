package event

// RegistrationStatus は申し込み状態
type RegistrationStatus string

const (
	StatusUnknown             RegistrationStatus = "UNKNOWN_STATUS"
	StatusOpenTickets         RegistrationStatus = "OPEN_TICKETS"
	StatusOpenExternal        RegistrationStatus = "OPEN_EXTERNAL"
	StatusOpenRSVP            RegistrationStatus = "OPEN_RSVP"
	StatusOpenRSVPWaitlist    RegistrationStatus = "OPEN_RSVP_WAITLIST"
	StatusScheduledRSVP       RegistrationStatus = "SCHEDULED_RSVP"
	StatusClosedManually      RegistrationStatus = "CLOSED_MANUALLY"
	StatusClosedAutomatically RegistrationStatus = "CLOSED_AUTOMATICALLY"
)

// ParseRegistrationStatus は文字列を申し込み状態に変換する。未知の値は StatusUnknown
func ParseRegistrationStatus(s string) RegistrationStatus {
	switch st := RegistrationStatus(s); st {
	case StatusOpenTickets, StatusOpenExternal, StatusOpenRSVP, StatusOpenRSVPWaitlist,
		StatusScheduledRSVP, StatusClosedManually, StatusClosedAutomatically:
		return st
	default:
		return StatusUnknown
	}
}

// HeroCTA はヒーロー部分の申し込みボタンの種類
type HeroCTA int

const (
	HeroNone HeroCTA = iota
	HeroTickets
	HeroExternal
	HeroSoldOut
)

func (h HeroCTA) IsTickets() bool  { return h == HeroTickets }
func (h HeroCTA) IsExternal() bool { return h == HeroExternal }
func (h HeroCTA) IsSoldOut() bool  { return h == HeroSoldOut }

// Presentation は申し込み状態ごとのヒーローと本文の表示
type Presentation struct {
	Hero        HeroCTA
	ShowTickets bool
}

// Present は申し込み状態から表示を決定する（全状態に対して定義される）
// CLOSED_MANUALLY は完売表示とチケット表の両方を出す
func Present(status RegistrationStatus) Presentation {
	switch status {
	case StatusOpenTickets:
		return Presentation{Hero: HeroTickets, ShowTickets: true}
	case StatusOpenExternal:
		return Presentation{Hero: HeroExternal}
	case StatusClosedManually:
		return Presentation{Hero: HeroSoldOut, ShowTickets: true}
	case StatusClosedAutomatically:
		return Presentation{Hero: HeroSoldOut}
	default:
		return Presentation{Hero: HeroNone}
	}
}
