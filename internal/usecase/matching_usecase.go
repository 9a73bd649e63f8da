package usecase

import (
	"context"
	"log"

	"appraisal_desk/internal/usecase/interfaces"
)

const defaultCandidateLimit = 5

// IMatchingUseCase finds and ranks qualified appraisers for an order. It
// never mutates order state.

type IMatchingUseCase interface {
	FindAppraisers(ctx context.Context, p FindParams) (MatchResult, error)
}

// FindParams resolves matching criteria either directly or via an order
// lookup; explicit values win over order fields.
type FindParams struct {
	OrderID       string
	PropertyState string
	PropertyType  string
	ClientID      string
	ExcludedIDs   []string
	Limit         int
}

type MatchResult struct {
	Candidates     []Candidate   `json:"candidates"`
	TotalInPanel   int           `json:"total_in_panel"`
	QualifiedCount int           `json:"qualified_count"`
	ReturnedCount  int           `json:"returned_count"`
	PanelSource    string        `json:"panel_source"`
	UsedFallback   bool          `json:"used_fallback"`
	Criteria       MatchCriteria `json:"criteria"`
	Message        string        `json:"message,omitempty"`
}

type MatchingUseCase struct {
	orders interfaces.IOrderRepository
	panel  interfaces.IPanelRepository
}

var _ IMatchingUseCase = (*MatchingUseCase)(nil)

func NewMatchingUseCase(orders interfaces.IOrderRepository, panel interfaces.IPanelRepository) *MatchingUseCase {
	return &MatchingUseCase{orders: orders, panel: panel}
}

func (u *MatchingUseCase) FindAppraisers(ctx context.Context, p FindParams) (MatchResult, error) {
	state, propertyType, clientID := p.PropertyState, p.PropertyType, p.ClientID

	if p.OrderID != "" {
		order, _, err := u.orders.FindByID(ctx, p.OrderID)
		if err != nil {
			return MatchResult{}, err
		}
		if order.ID == "" {
			return MatchResult{}, ErrOrderNotFound
		}
		if state == "" {
			state = order.PropertyState
		}
		if propertyType == "" {
			propertyType = order.PropertyType
		}
		if clientID == "" {
			clientID = order.ClientID
		}
	}

	var violations []string
	if state == "" {
		violations = append(violations, "property_state is required")
	}
	if propertyType == "" {
		violations = append(violations, "property_type is required")
	}
	if len(violations) > 0 {
		return MatchResult{}, &ValidationError{Violations: violations}
	}

	panel, err := u.panel.List(ctx, clientID)
	if err != nil {
		return MatchResult{}, err
	}
	if len(panel.Appraisers) == 0 {
		return MatchResult{}, ErrEmptyPanel
	}
	if panel.UsedFallback {
		log.Printf("[matching][usecase] client panel unusable, fell back to master client_id=%s", clientID)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultCandidateLimit
	}

	qualified := filterAppraisers(panel.Appraisers, state, propertyType, p.ExcludedIDs)
	ranked := rankAppraisers(qualified)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	candidates := make([]Candidate, len(ranked))
	for i, a := range ranked {
		candidates[i] = Candidate{Appraiser: a, Rank: i + 1}
	}

	res := MatchResult{
		Candidates:     candidates,
		TotalInPanel:   len(panel.Appraisers),
		QualifiedCount: len(qualified),
		ReturnedCount:  len(candidates),
		PanelSource:    panel.Source,
		UsedFallback:   panel.UsedFallback,
		Criteria: MatchCriteria{
			PropertyState: state,
			PropertyType:  propertyType,
			ClientID:      clientID,
			ExcludedIDs:   append([]string{}, p.ExcludedIDs...),
		},
	}
	if len(qualified) == 0 {
		res.Message = "No qualified appraisers found for " + propertyType + " in " + state
	}

	log.Printf("[matching][usecase] matched order_id=%s state=%s type=%s panel=%s qualified=%d returned=%d",
		p.OrderID, state, propertyType, panel.Source, res.QualifiedCount, res.ReturnedCount)
	return res, nil
}
