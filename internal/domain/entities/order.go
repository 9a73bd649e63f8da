package entities

import "time"

// OrderStatus represents the lifecycle of an appraisal order.
//
// Domain notes:
//   - Only intake and the lifecycle operations write statuses up to "engaged".
//   - "delivered" and "closed" are stamped by external fulfillment processes;
//     this service reads them but never writes them.
//   - Transitions are deliberately weakly guarded: each operation checks only
//     the precondition it needs (the order row may be edited concurrently).

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusRFPSent        OrderStatus = "rfp_sent"
	OrderStatusQuotesReceived OrderStatus = "quotes_received"
	OrderStatusEngaged        OrderStatus = "engaged"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusClosed         OrderStatus = "closed"
)

// Order is one commercial appraisal request, persisted as a row in the
// Orders collection. Rows are append-only: lifecycle operations rewrite the
// row in place but never delete it.
//
// Storage model (record store):
//   - key column: order_id (ORD-<year>-<5 digits>)
//   - LoanAmount stays a raw string; it is free text entered by the client.
//   - DeliveredAt stays raw as well since fulfillment writes it in an
//     unspecified format.

type Order struct {
	ID                   string      `json:"order_id"`
	Status               OrderStatus `json:"status"`
	PropertyAddress      string      `json:"property_address"`
	PropertyCity         string      `json:"property_city"`
	PropertyState        string      `json:"property_state"`
	PropertyType         string      `json:"property_type"`
	LoanAmount           string      `json:"loan_amount"`
	LoanPurpose          string      `json:"loan_purpose"`
	Scope                string      `json:"scope"`
	Urgency              string      `json:"urgency"`
	ClientID             string      `json:"client_id"`
	ContactName          string      `json:"contact_name"`
	ContactEmail         string      `json:"contact_email"`
	SpecialInstructions  string      `json:"special_instructions"`
	CreatedAt            time.Time   `json:"created_at"`
	RFPSentAt            time.Time   `json:"rfp_sent_at,omitzero"`
	QuotesDeadline       time.Time   `json:"quotes_deadline,omitzero"`
	EngagedAppraiserID   string      `json:"engaged_appraiser_id,omitempty"`
	EngagedAppraiserName string      `json:"engaged_appraiser_name,omitempty"`
	EngagedFee           string      `json:"engaged_fee,omitempty"`
	DueDate              string      `json:"due_date,omitempty"`
	DeliveredAt          string      `json:"delivered_at,omitempty"`
}
