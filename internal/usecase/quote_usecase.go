package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
)

// IQuoteUseCase records incoming appraiser quotes and produces the ranked
// summary presented to the client.

type IQuoteUseCase interface {
	RecordQuote(ctx context.Context, in QuoteInput) (entities.Quote, error)
	GetSummary(ctx context.Context, orderID string) (QuoteSummary, error)
	SendSummary(ctx context.Context, orderID string, dryRun bool) (SummaryDelivery, error)
}

type QuoteInput struct {
	OrderID        string
	AppraiserID    string
	Fee            float64
	TurnaroundDays int
	Notes          string
}

type QuoteSummary struct {
	OrderID         string        `json:"order_id"`
	PropertyAddress string        `json:"property_address,omitempty"`
	PropertyType    string        `json:"property_type,omitempty"`
	Quotes          []RankedQuote `json:"quotes"`
	QuoteCount      int           `json:"quote_count"`
	Recommended     *RankedQuote  `json:"recommended,omitempty"`
	Message         string        `json:"message,omitempty"`
}

type SummaryDelivery struct {
	SentTo     string `json:"sent_to,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Body       string `json:"body,omitempty"`
	DryRun     bool   `json:"dry_run,omitempty"`
	QuoteCount int    `json:"quote_count"`
}

type QuoteUseCase struct {
	orders     interfaces.IOrderRepository
	panel      interfaces.IPanelRepository
	quotes     interfaces.IQuoteRepository
	dispatcher *Dispatcher
	letters    LetterContext
	now        func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	orders interfaces.IOrderRepository,
	panel interfaces.IPanelRepository,
	quotes interfaces.IQuoteRepository,
	dispatcher *Dispatcher,
	letters LetterContext,
) *QuoteUseCase {
	return &QuoteUseCase{
		orders:     orders,
		panel:      panel,
		quotes:     quotes,
		dispatcher: dispatcher,
		letters:    letters,
		now:        time.Now,
	}
}

// RecordQuote persists a quote submission, rejecting duplicates per order and
// appraiser. The first quote on an rfp_sent order moves it to
// quotes_received; a failure on that status write is logged and swallowed
// since the quote itself is already saved.
func (u *QuoteUseCase) RecordQuote(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	var violations []string
	if in.OrderID == "" {
		violations = append(violations, "order_id is required")
	}
	if in.AppraiserID == "" {
		violations = append(violations, "appraiser_id is required")
	}
	if in.Fee <= 0 {
		violations = append(violations, "fee must be positive")
	}
	if in.TurnaroundDays <= 0 {
		violations = append(violations, "turnaround_days must be positive")
	}
	if len(violations) > 0 {
		return entities.Quote{}, &ValidationError{Violations: violations}
	}

	order, rowIndex, err := u.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return entities.Quote{}, err
	}
	if order.ID == "" {
		return entities.Quote{}, ErrOrderNotFound
	}

	appraiser, err := u.panel.FindByID(ctx, in.AppraiserID)
	if err != nil {
		return entities.Quote{}, err
	}
	if appraiser.ID == "" {
		return entities.Quote{}, ErrAppraiserNotFound
	}

	existing, err := u.quotes.ListByOrderID(ctx, in.OrderID)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range existing {
		if q.AppraiserID == in.AppraiserID {
			return entities.Quote{}, fmt.Errorf("%w: %s already quoted order %s",
				ErrDuplicateQuote, appraiser.Name, in.OrderID)
		}
	}

	quote := entities.Quote{
		ID:             newQuoteID(u.now()),
		OrderID:        in.OrderID,
		AppraiserID:    in.AppraiserID,
		AppraiserName:  appraiser.Name,
		AppraiserEmail: appraiser.Email,
		Fee:            in.Fee,
		TurnaroundDays: in.TurnaroundDays,
		Notes:          in.Notes,
		SubmittedAt:    u.now(),
	}

	if err := u.quotes.Create(ctx, quote); err != nil {
		return entities.Quote{}, err
	}

	if order.Status == entities.OrderStatusRFPSent {
		order.Status = entities.OrderStatusQuotesReceived
		if err := u.orders.UpdateAt(ctx, rowIndex, order); err != nil {
			log.Printf("[quotes][usecase] status bump failed order_id=%s err=%v", in.OrderID, err)
		}
	}

	log.Printf("[quotes][usecase] quote recorded quote_id=%s order_id=%s appraiser_id=%s fee=%.2f",
		quote.ID, quote.OrderID, quote.AppraiserID, quote.Fee)
	return quote, nil
}

// GetSummary returns every quote on the order ranked by value, with the top
// quote flagged as recommended. An order with no quotes yet is not an error.
func (u *QuoteUseCase) GetSummary(ctx context.Context, orderID string) (QuoteSummary, error) {
	summary, _, err := u.buildSummary(ctx, orderID)
	return summary, err
}

func (u *QuoteUseCase) buildSummary(ctx context.Context, orderID string) (QuoteSummary, entities.Order, error) {
	order, _, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return QuoteSummary{}, entities.Order{}, err
	}
	if order.ID == "" {
		return QuoteSummary{}, entities.Order{}, ErrOrderNotFound
	}

	quotes, err := u.quotes.ListByOrderID(ctx, orderID)
	if err != nil {
		return QuoteSummary{}, entities.Order{}, err
	}
	if len(quotes) == 0 {
		return QuoteSummary{
			OrderID: orderID,
			Quotes:  []RankedQuote{},
			Message: "No quotes received yet",
		}, order, nil
	}

	panel, err := u.panel.List(ctx, "")
	if err != nil {
		return QuoteSummary{}, entities.Order{}, err
	}

	ranked := rankQuotes(quotes, panelQuality(panel.Appraisers))
	return QuoteSummary{
		OrderID:         orderID,
		PropertyAddress: order.PropertyAddress,
		PropertyType:    order.PropertyType,
		Quotes:          ranked,
		QuoteCount:      len(ranked),
		Recommended:     &ranked[0],
	}, order, nil
}

// SendSummary emails the ranked quote table to the client contact on the
// order.
func (u *QuoteUseCase) SendSummary(ctx context.Context, orderID string, dryRun bool) (SummaryDelivery, error) {
	summary, order, err := u.buildSummary(ctx, orderID)
	if err != nil {
		return SummaryDelivery{}, err
	}
	if len(summary.Quotes) == 0 {
		return SummaryDelivery{}, ErrNoQuotes
	}
	if order.ContactEmail == "" {
		return SummaryDelivery{}, ErrNoClientEmail
	}

	subject, body := renderSummary(u.letters, summary)

	if dryRun {
		return SummaryDelivery{
			SentTo:     order.ContactEmail,
			Subject:    subject,
			Body:       body,
			DryRun:     true,
			QuoteCount: len(summary.Quotes),
		}, nil
	}

	results := u.dispatcher.Dispatch(ctx, []Message{{
		RecipientID:   order.ClientID,
		RecipientName: order.ContactName,
		To:            order.ContactEmail,
		Subject:       subject,
		Body:          body,
	}}, false)
	if results[0].Status != DeliveryStatusSent {
		return SummaryDelivery{}, fmt.Errorf("%w: %s", ErrSummarySendFailed, results[0].Error)
	}

	log.Printf("[quotes][usecase] summary sent order_id=%s to=%s quotes=%d",
		orderID, order.ContactEmail, len(summary.Quotes))
	return SummaryDelivery{
		SentTo:     order.ContactEmail,
		QuoteCount: len(summary.Quotes),
	}, nil
}
