package usecase

import (
	"context"
	"log"
	"slices"
	"time"

	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
)

const (
	rfpDeadlineWindow  = 48 * time.Hour
	rfpDeadlineDisplay = "January 02, 2006 at 03:04 PM"
)

// IRFPUseCase broadcasts quote requests to appraisers for an order.

type IRFPUseCase interface {
	SendRFP(ctx context.Context, p RFPParams) (RFPResult, error)
}

// RFPParams targets either the given appraiser IDs (loaded from the master
// panel) or, when empty, the auto-matched candidates for the order.
type RFPParams struct {
	OrderID      string
	AppraiserIDs []string
	DryRun       bool
}

type RFPResult struct {
	OrderID   string           `json:"order_id"`
	Results   []DeliveryResult `json:"results"`
	SentCount int              `json:"sent_count"`
	Deadline  string           `json:"deadline"`
	DryRun    bool             `json:"dry_run"`
	Warning   string           `json:"warning,omitempty"`
}

type RFPUseCase struct {
	orders     interfaces.IOrderRepository
	panel      interfaces.IPanelRepository
	matching   *MatchingUseCase
	dispatcher *Dispatcher
	letters    LetterContext
	now        func() time.Time
}

var _ IRFPUseCase = (*RFPUseCase)(nil)

func NewRFPUseCase(
	orders interfaces.IOrderRepository,
	panel interfaces.IPanelRepository,
	matching *MatchingUseCase,
	dispatcher *Dispatcher,
	letters LetterContext,
) *RFPUseCase {
	return &RFPUseCase{
		orders:     orders,
		panel:      panel,
		matching:   matching,
		dispatcher: dispatcher,
		letters:    letters,
		now:        time.Now,
	}
}

// SendRFP emails a quote request to each target appraiser and, when at least
// one went out, moves the order to rfp_sent with a 48 hour quote deadline.
// A failed status write after the emails went out downgrades to a warning
// rather than an error.
func (u *RFPUseCase) SendRFP(ctx context.Context, p RFPParams) (RFPResult, error) {
	order, rowIndex, err := u.orders.FindByID(ctx, p.OrderID)
	if err != nil {
		return RFPResult{}, err
	}
	if order.ID == "" {
		return RFPResult{}, ErrOrderNotFound
	}

	var targets []entities.Appraiser
	if len(p.AppraiserIDs) > 0 {
		panel, err := u.panel.List(ctx, "")
		if err != nil {
			return RFPResult{}, err
		}
		for _, a := range panel.Appraisers {
			if slices.Contains(p.AppraiserIDs, a.ID) {
				targets = append(targets, a)
			}
		}
	} else {
		match, err := u.matching.FindAppraisers(ctx, FindParams{
			PropertyState: order.PropertyState,
			PropertyType:  order.PropertyType,
			ClientID:      order.ClientID,
		})
		if err != nil {
			return RFPResult{}, err
		}
		for _, c := range match.Candidates {
			targets = append(targets, c.Appraiser)
		}
	}

	if len(targets) == 0 {
		return RFPResult{}, ErrNoRFPTargets
	}

	now := u.now()
	deadline := now.Add(rfpDeadlineWindow)
	deadlineText := deadline.Format(rfpDeadlineDisplay)

	msgs := make([]Message, len(targets))
	for i, a := range targets {
		subject, body := renderRFP(u.letters, order, a.Name, deadlineText)
		msgs[i] = Message{
			RecipientID:   a.ID,
			RecipientName: a.Name,
			To:            a.Email,
			Subject:       subject,
			Body:          body,
		}
	}

	results := u.dispatcher.Dispatch(ctx, msgs, p.DryRun)
	sentCount := SentCount(results)

	res := RFPResult{
		OrderID:   p.OrderID,
		Results:   results,
		SentCount: sentCount,
		Deadline:  deadlineText,
		DryRun:    p.DryRun,
	}

	if sentCount > 0 && !p.DryRun {
		order.Status = entities.OrderStatusRFPSent
		order.RFPSentAt = now
		order.QuotesDeadline = deadline
		if err := u.orders.UpdateAt(ctx, rowIndex, order); err != nil {
			log.Printf("[rfp][usecase] status write failed after send order_id=%s err=%v", p.OrderID, err)
			res.Warning = "Emails sent but failed to update order: " + err.Error()
		}
	}

	log.Printf("[rfp][usecase] rfp dispatched order_id=%s targets=%d sent=%d dry_run=%t",
		p.OrderID, len(targets), sentCount, p.DryRun)
	return res, nil
}
