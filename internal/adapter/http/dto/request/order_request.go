package request

// OrderRequest is the intake payload. Field-level validation happens in the
// use case so the client gets every violation back at once, not just the
// first binding failure.
type OrderRequest struct {
	PropertyAddress     string `json:"property_address"`
	PropertyCity        string `json:"property_city"`
	PropertyState       string `json:"property_state"`
	PropertyType        string `json:"property_type"`
	LoanAmount          string `json:"loan_amount"`
	LoanPurpose         string `json:"loan_purpose"`
	Scope               string `json:"scope"`
	Urgency             string `json:"urgency"`
	ClientID            string `json:"client_id"`
	ContactName         string `json:"contact_name"`
	ContactEmail        string `json:"contact_email"`
	SpecialInstructions string `json:"special_instructions"`
}
