package interfaces

import (
	"context"

	"appraisal_desk/internal/domain/entities"
)

// IQuoteRepository abstracts the Quotes collection. Quotes are append-only;
// the single mutation is flipping the selected flag at engagement.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Quote, error)
	MarkSelected(ctx context.Context, quoteID string) error
}
