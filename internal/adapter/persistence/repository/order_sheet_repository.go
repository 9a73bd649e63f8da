package repository

import (
	"context"
	"log"
	"time"

	"appraisal_desk/internal/adapter/persistence/recordstore"
	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
)

var ordersColumns = []string{
	"order_id", "status", "property_address", "property_city", "property_state",
	"property_type", "loan_amount", "loan_purpose", "scope", "urgency",
	"client_id", "contact_name", "contact_email", "special_instructions",
	"created_at", "rfp_sent_at", "quotes_deadline", "engaged_appraiser_id",
	"engaged_appraiser_name", "engaged_fee", "due_date", "delivered_at",
}

// OrderSheetRepository persists orders as rows of the Orders sheet.
type OrderSheetRepository struct {
	store *recordstore.Store
	col   recordstore.Collection
}

var _ interfaces.IOrderRepository = (*OrderSheetRepository)(nil)

func NewOrderSheetRepository(store *recordstore.Store, spreadsheetID string) *OrderSheetRepository {
	return &OrderSheetRepository{
		store: store,
		col: recordstore.Collection{
			SpreadsheetID: spreadsheetID,
			Sheet:         "Orders",
			Columns:       ordersColumns,
		},
	}
}

func (r *OrderSheetRepository) Create(ctx context.Context, o entities.Order) error {
	if err := r.store.Append(ctx, r.col, orderToRow(o)); err != nil {
		return err
	}
	log.Printf("[orders][repository] order appended order_id=%s", o.ID)
	return nil
}

func (r *OrderSheetRepository) FindByID(ctx context.Context, orderID string) (entities.Order, int, error) {
	rowIndex, row, err := r.store.FindByKey(ctx, r.col, "order_id", orderID)
	if err != nil {
		return entities.Order{}, 0, err
	}
	if row == nil {
		return entities.Order{}, 0, nil
	}
	return orderFromRow(row), rowIndex, nil
}

func (r *OrderSheetRepository) UpdateAt(ctx context.Context, rowIndex int, o entities.Order) error {
	return r.store.UpdateAt(ctx, r.col, rowIndex, orderToRow(o))
}

func orderToRow(o entities.Order) recordstore.Row {
	return recordstore.Row{
		"order_id":               o.ID,
		"status":                 string(o.Status),
		"property_address":       o.PropertyAddress,
		"property_city":          o.PropertyCity,
		"property_state":         o.PropertyState,
		"property_type":          o.PropertyType,
		"loan_amount":            o.LoanAmount,
		"loan_purpose":           o.LoanPurpose,
		"scope":                  o.Scope,
		"urgency":                o.Urgency,
		"client_id":              o.ClientID,
		"contact_name":           o.ContactName,
		"contact_email":          o.ContactEmail,
		"special_instructions":   o.SpecialInstructions,
		"created_at":             formatTime(o.CreatedAt),
		"rfp_sent_at":            formatTime(o.RFPSentAt),
		"quotes_deadline":        formatTime(o.QuotesDeadline),
		"engaged_appraiser_id":   o.EngagedAppraiserID,
		"engaged_appraiser_name": o.EngagedAppraiserName,
		"engaged_fee":            o.EngagedFee,
		"due_date":               o.DueDate,
		"delivered_at":           o.DeliveredAt,
	}
}

func orderFromRow(row recordstore.Row) entities.Order {
	return entities.Order{
		ID:                   row["order_id"],
		Status:               entities.OrderStatus(row["status"]),
		PropertyAddress:      row["property_address"],
		PropertyCity:         row["property_city"],
		PropertyState:        row["property_state"],
		PropertyType:         row["property_type"],
		LoanAmount:           row["loan_amount"],
		LoanPurpose:          row["loan_purpose"],
		Scope:                row["scope"],
		Urgency:              row["urgency"],
		ClientID:             row["client_id"],
		ContactName:          row["contact_name"],
		ContactEmail:         row["contact_email"],
		SpecialInstructions:  row["special_instructions"],
		CreatedAt:            parseTime(row["created_at"]),
		RFPSentAt:            parseTime(row["rfp_sent_at"]),
		QuotesDeadline:       parseTime(row["quotes_deadline"]),
		EngagedAppraiserID:   row["engaged_appraiser_id"],
		EngagedAppraiserName: row["engaged_appraiser_name"],
		EngagedFee:           row["engaged_fee"],
		DueDate:              row["due_date"],
		DeliveredAt:          row["delivered_at"],
	}
}

// formatTime serializes timestamps as RFC 3339; the zero value serializes as
// a blank cell.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// parseTime reads a timestamp cell. Blank and unparseable cells come back as
// the zero time; other processes sometimes hand-edit these columns.
func parseTime(cell string) time.Time {
	if cell == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, cell)
	if err != nil {
		return time.Time{}
	}
	return t
}
