package wix

import (
	"context"
	"net/http"

	"github.com/sanosuguru/go-event-storefront/internal/domain/ticket"
)

const queryAvailableTicketsPath = "/events/v1/tickets/available/query"

type queryAvailableTicketsRequest struct {
	Filter map[string]string `json:"filter"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
	Sort   string            `json:"sort,omitempty"`
}

type queryAvailableTicketsResponse struct {
	Definitions []ticketDefinitionDTO `json:"definitions"`
}

// TicketRepository は券種リポジトリのWix実装
type TicketRepository struct {
	client *Client
}

// NewTicketRepository はTicketRepositoryを作成する
func NewTicketRepository(client *Client) *TicketRepository {
	return &TicketRepository{client: client}
}

// ListAvailable は購入可能な券種の定義を取得する
func (r *TicketRepository) ListAvailable(ctx context.Context, q ticket.Query) ([]*ticket.Definition, error) {
	req := queryAvailableTicketsRequest{
		Filter: map[string]string{"eventId": q.EventID},
		Offset: q.Offset,
		Limit:  q.Limit,
		Sort:   q.Sort,
	}

	var resp queryAvailableTicketsResponse
	if err := r.client.do(ctx, "query_available_tickets", http.MethodPost, queryAvailableTicketsPath, nil, req, &resp); err != nil {
		return nil, err
	}

	defs := make([]*ticket.Definition, 0, len(resp.Definitions))
	for i := range resp.Definitions {
		d, err := resp.Definitions[i].toEntity()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

var _ ticket.Repository = (*TicketRepository)(nil)
