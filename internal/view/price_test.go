package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanosuguru/go-event-storefront/internal/domain/ticket"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		def  ticket.Definition
		want string
	}{
		{"ユーロ", ticket.Definition{Price: ticket.Price{Amount: "25.00", Currency: "EUR"}}, "25,00 €"},
		{"小数1桁", ticket.Definition{Price: ticket.Price{Amount: "8.5", Currency: "EUR"}}, "8,50 €"},
		{"ドル", ticket.Definition{Price: ticket.Price{Amount: "40", Currency: "USD"}}, "40,00 $"},
		{"記号のない通貨はコード", ticket.Definition{Price: ticket.Price{Amount: "100", Currency: "MXN"}}, "100,00 MXN"},
		{"無料券", ticket.Definition{Free: true, Price: ticket.Price{Amount: "0", Currency: "EUR"}}, "Gratis"},
		{"金額が数値でない", ticket.Definition{Price: ticket.Price{Amount: "n/a", Currency: "EUR"}}, "n/a"},
		{"不明な通貨", ticket.Definition{Price: ticket.Price{Amount: "10", Currency: "???"}}, "10,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(&tt.def))
		})
	}
}
