package ticket

import "time"

// Definition は購入可能な券種の定義
type Definition struct {
	ID               string
	Name             string
	Description      string
	Free             bool
	Price            Price
	LimitPerCheckout int
	OrderIndex       int
	SalePeriod       *SalePeriod
	SaleStatus       string
}

// Price は券種の価格
type Price struct {
	// Amount は10進数の文字列（例: "25.00"）
	Amount   string
	Currency string
}

// SalePeriod は販売期間。どちらかの端が欠けている場合は販売期間外として扱う
type SalePeriod struct {
	Start *time.Time
	End   *time.Time
}

// Contains は now が [Start, End) に含まれるかどうかを返す
func (p *SalePeriod) Contains(now time.Time) bool {
	if p.Start == nil || p.End == nil {
		return false
	}
	return !now.Before(*p.Start) && now.Before(*p.End)
}

// CanPurchase は now 時点で購入可能かどうかを返す
func (d *Definition) CanPurchase(now time.Time) bool {
	if d.LimitPerCheckout <= 0 {
		return false
	}
	return d.SalePeriod == nil || d.SalePeriod.Contains(now)
}

// Offer は描画時点の購入可否を付与した券種
type Offer struct {
	Definition  *Definition
	CanPurchase bool
}

// NewOffers は now 時点の購入可否を計算する。順序は入力のまま
func NewOffers(defs []*Definition, now time.Time) []Offer {
	offers := make([]Offer, 0, len(defs))
	for _, d := range defs {
		offers = append(offers, Offer{Definition: d, CanPurchase: d.CanPurchase(now)})
	}
	return offers
}
