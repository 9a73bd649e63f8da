package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"slices"
	"strings"
	"time"

	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
)

var (
	validPropertyTypes = []string{
		"Office", "Retail", "Industrial", "Multifamily",
		"Mixed-Use", "Special Purpose", "Land", "Hotel",
	}
	validUrgency = []string{"Standard", "Rush", "Super Rush"}
	validScope   = []string{"Full Appraisal", "Limited Appraisal", "Evaluation"}

	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	stateRe = regexp.MustCompile(`\b([A-Z]{2})\b`)
)

// IIntakeUseCase validates and records a new appraisal order.

type IIntakeUseCase interface {
	CreateOrder(ctx context.Context, in OrderInput) (entities.Order, error)
}

type OrderInput struct {
	PropertyAddress     string
	PropertyCity        string
	PropertyState       string
	PropertyType        string
	LoanAmount          string
	LoanPurpose         string
	Scope               string
	Urgency             string
	ClientID            string
	ContactName         string
	ContactEmail        string
	SpecialInstructions string
}

type IntakeUseCase struct {
	orders interfaces.IOrderRepository
	now    func() time.Time
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(orders interfaces.IOrderRepository) *IntakeUseCase {
	return &IntakeUseCase{orders: orders, now: time.Now}
}

// CreateOrder validates the input (accumulating every violation rather than
// stopping at the first), assigns a fresh order ID, parses city/state out of
// the address when not supplied, and persists the order as pending.
func (u *IntakeUseCase) CreateOrder(ctx context.Context, in OrderInput) (entities.Order, error) {
	if violations := validateOrderInput(in); len(violations) > 0 {
		return entities.Order{}, &ValidationError{Violations: violations}
	}

	now := u.now()
	city, state := parseAddress(in.PropertyAddress)
	if in.PropertyCity != "" {
		city = in.PropertyCity
	}
	if in.PropertyState != "" {
		state = in.PropertyState
	}

	scope := in.Scope
	if scope == "" {
		scope = "Full Appraisal"
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = "Standard"
	}

	order := entities.Order{
		ID:                  newOrderID(now),
		Status:              entities.OrderStatusPending,
		PropertyAddress:     in.PropertyAddress,
		PropertyCity:        city,
		PropertyState:       state,
		PropertyType:        in.PropertyType,
		LoanAmount:          in.LoanAmount,
		LoanPurpose:         in.LoanPurpose,
		Scope:               scope,
		Urgency:             urgency,
		ClientID:            in.ClientID,
		ContactName:         in.ContactName,
		ContactEmail:        in.ContactEmail,
		SpecialInstructions: in.SpecialInstructions,
		CreatedAt:           now,
	}

	if err := u.orders.Create(ctx, order); err != nil {
		log.Printf("[intake][usecase] failed to persist order order_id=%s err=%v", order.ID, err)
		return entities.Order{}, err
	}

	log.Printf("[intake][usecase] order created order_id=%s client_id=%s type=%s state=%s",
		order.ID, order.ClientID, order.PropertyType, order.PropertyState)
	return order, nil
}

func validateOrderInput(in OrderInput) []string {
	var violations []string

	required := []struct {
		name  string
		value string
	}{
		{"property_address", in.PropertyAddress},
		{"property_type", in.PropertyType},
		{"client_id", in.ClientID},
		{"contact_email", in.ContactEmail},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			violations = append(violations, "Missing required field: "+f.name)
		}
	}

	if in.ContactEmail != "" && !emailRe.MatchString(in.ContactEmail) {
		violations = append(violations, "Invalid email format: "+in.ContactEmail)
	}

	if in.PropertyType != "" && !slices.Contains(validPropertyTypes, in.PropertyType) {
		violations = append(violations, fmt.Sprintf("Invalid property type: %s. Must be one of: %s",
			in.PropertyType, strings.Join(validPropertyTypes, ", ")))
	}
	if in.Urgency != "" && !slices.Contains(validUrgency, in.Urgency) {
		violations = append(violations, fmt.Sprintf("Invalid urgency: %s. Must be one of: %s",
			in.Urgency, strings.Join(validUrgency, ", ")))
	}
	if in.Scope != "" && !slices.Contains(validScope, in.Scope) {
		violations = append(violations, fmt.Sprintf("Invalid scope: %s. Must be one of: %s",
			in.Scope, strings.Join(validScope, ", ")))
	}

	return violations
}

// parseAddress extracts city and state from a free-text address like
// "123 Main St, Chicago, IL 60601": city is the second-to-last comma
// segment, state the first two-uppercase-letter token of the last one.
func parseAddress(address string) (city, state string) {
	parts := strings.Split(address, ",")
	if len(parts) >= 2 {
		city = strings.TrimSpace(parts[len(parts)-2])
	}
	last := strings.TrimSpace(parts[len(parts)-1])
	if m := stateRe.FindStringSubmatch(last); m != nil {
		state = m[1]
	}
	return city, state
}
