package view

import (
	"github.com/sanosuguru/go-event-storefront/internal/domain/ticket"
)

// maxQuantityOptions は数量選択の上限
const maxQuantityOptions = 10

// TicketRow はチケット表の1行
type TicketRow struct {
	ID          string
	Name        string
	Description string
	Price       string
	CanPurchase bool
	// Quantities は購入可能な場合の数量選択肢（0 を含む）
	Quantities []int
	// StatusLabel は購入できない場合の表示
	StatusLabel string
}

// TicketsTable はチケット表の表示モデル
type TicketsTable struct {
	EventSlug string
	Rows      []TicketRow
}

// NewTicketsTable は購入可否を計算済みの券種からチケット表を作る
func NewTicketsTable(slug string, offers []ticket.Offer) TicketsTable {
	rows := make([]TicketRow, 0, len(offers))
	for _, o := range offers {
		d := o.Definition
		row := TicketRow{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       FormatPrice(d),
			CanPurchase: o.CanPurchase,
		}
		if o.CanPurchase {
			row.Quantities = quantityOptions(d.LimitPerCheckout)
		} else {
			row.StatusLabel = saleStatusLabel(d.SaleStatus)
		}
		rows = append(rows, row)
	}
	return TicketsTable{EventSlug: slug, Rows: rows}
}

// HasPurchasable は1つでも購入可能な券種があるかどうかを返す
func (t TicketsTable) HasPurchasable() bool {
	for _, r := range t.Rows {
		if r.CanPurchase {
			return true
		}
	}
	return false
}

func quantityOptions(limit int) []int {
	if limit > maxQuantityOptions {
		limit = maxQuantityOptions
	}
	opts := make([]int, 0, limit+1)
	for i := 0; i <= limit; i++ {
		opts = append(opts, i)
	}
	return opts
}

func saleStatusLabel(status string) string {
	switch status {
	case "SALE_SCHEDULED":
		return "Próximamente"
	case "SALE_ENDED":
		return "Venta finalizada"
	default:
		return "Agotado"
	}
}
