package view

import (
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sanosuguru/go-event-storefront/internal/domain/ticket"
)

// 表示ロケール
var displayLang = language.Spanish

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// FormatPrice は券種の価格を "25,00 €" の形式に整形する。無料券は "Gratis"
func FormatPrice(def *ticket.Definition) string {
	if def.Free {
		return "Gratis"
	}
	amount, err := strconv.ParseFloat(def.Price.Amount, 64)
	if err != nil {
		return def.Price.Amount
	}
	if amount == 0 && def.Price.Currency == "" {
		return "Gratis"
	}

	p := message.NewPrinter(displayLang)
	formatted := p.Sprint(number.Decimal(amount, number.Scale(2)))

	unit, err := currency.ParseISO(def.Price.Currency)
	if err != nil {
		return formatted
	}
	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String()
	}
	return formatted + " " + symbol
}
