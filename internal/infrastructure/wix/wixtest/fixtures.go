package wixtest

// Event はテスト用のイベントJSONを作成する
func Event(id, slug, title, status, startDate string) map[string]any {
	return map[string]any{
		"id":                  id,
		"slug":                slug,
		"title":               title,
		"shortDescription":    "La noche más ruidosa del año",
		"detailedDescription": "<p>Tres escenarios y doce bandas.</p>",
		"mainImage": map[string]any{
			"id":      "c837a6_rockfest~mv2.jpg",
			"url":     "https://static.wixstatic.com/media/c837a6_rockfest~mv2.jpg",
			"width":   1920,
			"height":  1080,
			"altText": title,
		},
		"dateAndTimeSettings": map[string]any{
			"startDate":  startDate,
			"endDate":    startDate,
			"timeZoneId": "Europe/Madrid",
			"formatted": map[string]any{
				"dateAndTime": "12 de octubre de 2024, 21:00 – 23:30",
				"startDate":   "12 de octubre de 2024",
				"startTime":   "21:00",
			},
		},
		"location": map[string]any{
			"name":    "Sala Apolo",
			"address": map[string]any{"formatted": "Carrer Nou de la Rambla, 113, Barcelona"},
		},
		"registration": map[string]any{
			"status": status,
		},
	}
}

// TicketDefinition はテスト用の券種定義JSONを作成する
func TicketDefinition(id, name, amount string, limitPerCheckout int) map[string]any {
	return map[string]any{
		"id":               id,
		"name":             name,
		"price":            map[string]any{"amount": amount, "currency": "EUR"},
		"limitPerCheckout": limitPerCheckout,
		"saleStatus":       "SALE_STARTED",
	}
}

// ScheduleItem はテスト用のスケジュール項目JSONを作成する
func ScheduleItem(id, eventID, name, start, end string) map[string]any {
	return map[string]any{
		"id":        id,
		"eventId":   eventID,
		"name":      name,
		"stageName": "Escenario principal",
		"timeSlot": map[string]any{
			"start":      start,
			"end":        end,
			"timeZoneId": "Europe/Madrid",
		},
	}
}
