package entities

import "time"

// Quote is one fee/turnaround offer from an appraiser for an order.
//
// Storage model (record store):
//   - key column: quote_id (Q-<timestamp>-<4 letters>)
//   - at most one quote per (order_id, appraiser_id) pair; duplicates are
//     rejected at recording time, never overwritten
//   - appraiser name/email are denormalized snapshots taken at submission so
//     the quote stays historically accurate if the panel entry changes
//   - Selected flips to true exactly once per order, at engagement

type Quote struct {
	ID             string    `json:"quote_id"`
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
