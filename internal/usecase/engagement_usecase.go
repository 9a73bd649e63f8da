package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
)

// IEngagementUseCase finalizes appraiser selection: engagement letter to the
// winner, decline notices to everyone else, order and quote records updated.

type IEngagementUseCase interface {
	EngageAppraiser(ctx context.Context, p EngageParams) (EngagementResult, error)
}

// EngageParams picks the winning quote either explicitly by ID or, with Auto
// set, the top-ranked quote.
type EngageParams struct {
	OrderID string
	QuoteID string
	Auto    bool
	DryRun  bool
}

type EngagementResult struct {
	OrderID              string           `json:"order_id"`
	EngagedAppraiserID   string           `json:"engaged_appraiser_id"`
	EngagedAppraiserName string           `json:"engaged_appraiser"`
	Fee                  float64          `json:"fee"`
	DueDate              string           `json:"due_date"`
	Engagement           DeliveryResult   `json:"engagement"`
	Declines             []DeliveryResult `json:"declines"`
	Warning              string           `json:"warning,omitempty"`
	DryRun               bool             `json:"dry_run"`
}

type EngagementUseCase struct {
	orders     interfaces.IOrderRepository
	panel      interfaces.IPanelRepository
	quotes     interfaces.IQuoteRepository
	dispatcher *Dispatcher
	letters    LetterContext
	now        func() time.Time
}

var _ IEngagementUseCase = (*EngagementUseCase)(nil)

func NewEngagementUseCase(
	orders interfaces.IOrderRepository,
	panel interfaces.IPanelRepository,
	quotes interfaces.IQuoteRepository,
	dispatcher *Dispatcher,
	letters LetterContext,
) *EngagementUseCase {
	return &EngagementUseCase{
		orders:     orders,
		panel:      panel,
		quotes:     quotes,
		dispatcher: dispatcher,
		letters:    letters,
		now:        time.Now,
	}
}

// EngageAppraiser sends the engagement letter and decline notices to every
// other quoting appraiser, then moves the order to engaged with the agreed
// fee and due date. Send failures are recorded per recipient, never fatal;
// a failed order write after the letters went out downgrades to a warning.
func (u *EngagementUseCase) EngageAppraiser(ctx context.Context, p EngageParams) (EngagementResult, error) {
	if p.QuoteID == "" && !p.Auto {
		return EngagementResult{}, &ValidationError{Violations: []string{"either quote_id or auto is required"}}
	}

	order, rowIndex, err := u.orders.FindByID(ctx, p.OrderID)
	if err != nil {
		return EngagementResult{}, err
	}
	if order.ID == "" {
		return EngagementResult{}, ErrOrderNotFound
	}

	quotes, err := u.quotes.ListByOrderID(ctx, p.OrderID)
	if err != nil {
		return EngagementResult{}, err
	}
	if len(quotes) == 0 {
		return EngagementResult{}, ErrNoQuotes
	}

	var selected entities.Quote
	if p.QuoteID != "" {
		found := false
		for _, q := range quotes {
			if q.ID == p.QuoteID {
				selected = q
				found = true
				break
			}
		}
		if !found {
			return EngagementResult{}, fmt.Errorf("%w: %s", ErrQuoteNotFound, p.QuoteID)
		}
	} else {
		panel, err := u.panel.List(ctx, "")
		if err != nil {
			return EngagementResult{}, err
		}
		ranked := rankQuotes(quotes, panelQuality(panel.Appraisers))
		selected = ranked[0].Quote
	}

	turnaround := selected.TurnaroundDays
	if turnaround <= 0 {
		turnaround = 14
	}
	dueDate := CalculateDueDate(u.now(), turnaround).Format("2006-01-02")

	engSubject, engBody := renderEngagement(u.letters, order, selected, dueDate)
	engResults := u.dispatcher.Dispatch(ctx, []Message{{
		RecipientID:   selected.AppraiserID,
		RecipientName: selected.AppraiserName,
		To:            selected.AppraiserEmail,
		Subject:       engSubject,
		Body:          engBody,
	}}, p.DryRun)
	engagement := engResults[0]

	var declineMsgs []Message
	for _, q := range quotes {
		if q.ID == selected.ID {
			continue
		}
		decSubject, decBody := renderDecline(u.letters, order, q)
		declineMsgs = append(declineMsgs, Message{
			RecipientID:   q.AppraiserID,
			RecipientName: q.AppraiserName,
			To:            q.AppraiserEmail,
			Subject:       decSubject,
			Body:          decBody,
		})
	}
	declines := u.dispatcher.Dispatch(ctx, declineMsgs, p.DryRun)

	res := EngagementResult{
		OrderID:              p.OrderID,
		EngagedAppraiserID:   selected.AppraiserID,
		EngagedAppraiserName: selected.AppraiserName,
		Fee:                  selected.Fee,
		DueDate:              dueDate,
		Engagement:           engagement,
		Declines:             declines,
		DryRun:               p.DryRun,
	}

	if !p.DryRun {
		order.Status = entities.OrderStatusEngaged
		order.EngagedAppraiserID = selected.AppraiserID
		order.EngagedAppraiserName = selected.AppraiserName
		order.EngagedFee = fmt.Sprintf("%g", selected.Fee)
		order.DueDate = dueDate
		if err := u.orders.UpdateAt(ctx, rowIndex, order); err != nil {
			log.Printf("[engagement][usecase] order write failed after send order_id=%s err=%v", p.OrderID, err)
			res.Warning = "Emails sent but failed to update order: " + err.Error()
		}

		if err := u.quotes.MarkSelected(ctx, selected.ID); err != nil {
			log.Printf("[engagement][usecase] failed to mark quote selected quote_id=%s err=%v", selected.ID, err)
		}
	}

	log.Printf("[engagement][usecase] engaged order_id=%s appraiser=%s fee=%.2f due=%s dry_run=%t",
		p.OrderID, selected.AppraiserName, selected.Fee, dueDate, p.DryRun)
	return res, nil
}

// CalculateDueDate walks forward from the given day counting only business
// days, skipping Saturdays and Sundays.
func CalculateDueDate(from time.Time, businessDays int) time.Time {
	due := from
	added := 0
	for added < businessDays {
		due = due.AddDate(0, 0, 1)
		if due.Weekday() != time.Saturday && due.Weekday() != time.Sunday {
			added++
		}
	}
	return due
}
