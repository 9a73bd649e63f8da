package response

import (
	"time"

	"appraisal_desk/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID        string    `json:"quote_id"`
	OrderID        string    `json:"order_id"`
	AppraiserID    string    `json:"appraiser_id"`
	AppraiserName  string    `json:"appraiser_name"`
	AppraiserEmail string    `json:"appraiser_email"`
	Fee            float64   `json:"fee"`
	TurnaroundDays int       `json:"turnaround_days"`
	Notes          string    `json:"notes,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
	Selected       bool      `json:"selected"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:        q.ID,
		OrderID:        q.OrderID,
		AppraiserID:    q.AppraiserID,
		AppraiserName:  q.AppraiserName,
		AppraiserEmail: q.AppraiserEmail,
		Fee:            q.Fee,
		TurnaroundDays: q.TurnaroundDays,
		Notes:          q.Notes,
		SubmittedAt:    q.SubmittedAt,
		Selected:       q.Selected,
	}
}
