package interfaces

import (
	"context"

	"appraisal_desk/internal/domain/entities"
)

// IOrderRepository abstracts the Orders collection of the record store.
//
// FindByID also returns the positional row index so lifecycle operations can
// write the order back with UpdateAt after an irreversible side effect. A
// zero-ID order with a nil error means not found.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) error
	FindByID(ctx context.Context, orderID string) (entities.Order, int, error)
	UpdateAt(ctx context.Context, rowIndex int, o entities.Order) error
}
