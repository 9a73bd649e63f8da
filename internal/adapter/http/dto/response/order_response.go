package response

import (
	"time"

	"appraisal_desk/internal/domain/entities"
)

type OrderResponse struct {
	OrderID              string    `json:"order_id"`
	Status               string    `json:"status"`
	PropertyAddress      string    `json:"property_address"`
	PropertyCity         string    `json:"property_city"`
	PropertyState        string    `json:"property_state"`
	PropertyType         string    `json:"property_type"`
	LoanAmount           string    `json:"loan_amount"`
	LoanPurpose          string    `json:"loan_purpose"`
	Scope                string    `json:"scope"`
	Urgency              string    `json:"urgency"`
	ClientID             string    `json:"client_id"`
	ContactName          string    `json:"contact_name"`
	ContactEmail         string    `json:"contact_email"`
	SpecialInstructions  string    `json:"special_instructions,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	RFPSentAt            time.Time `json:"rfp_sent_at,omitzero"`
	QuotesDeadline       time.Time `json:"quotes_deadline,omitzero"`
	EngagedAppraiserID   string    `json:"engaged_appraiser_id,omitempty"`
	EngagedAppraiserName string    `json:"engaged_appraiser_name,omitempty"`
	EngagedFee           string    `json:"engaged_fee,omitempty"`
	DueDate              string    `json:"due_date,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:              o.ID,
		Status:               string(o.Status),
		PropertyAddress:      o.PropertyAddress,
		PropertyCity:         o.PropertyCity,
		PropertyState:        o.PropertyState,
		PropertyType:         o.PropertyType,
		LoanAmount:           o.LoanAmount,
		LoanPurpose:          o.LoanPurpose,
		Scope:                o.Scope,
		Urgency:              o.Urgency,
		ClientID:             o.ClientID,
		ContactName:          o.ContactName,
		ContactEmail:         o.ContactEmail,
		SpecialInstructions:  o.SpecialInstructions,
		CreatedAt:            o.CreatedAt,
		RFPSentAt:            o.RFPSentAt,
		QuotesDeadline:       o.QuotesDeadline,
		EngagedAppraiserID:   o.EngagedAppraiserID,
		EngagedAppraiserName: o.EngagedAppraiserName,
		EngagedFee:           o.EngagedFee,
		DueDate:              o.DueDate,
	}
}
