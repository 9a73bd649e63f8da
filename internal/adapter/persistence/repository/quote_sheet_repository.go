package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"appraisal_desk/internal/adapter/persistence/recordstore"
	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
)

var quotesColumns = []string{
	"quote_id", "order_id", "appraiser_id", "appraiser_name", "appraiser_email",
	"fee", "turnaround_days", "notes", "submitted_at", "selected",
}

// QuoteSheetRepository persists quotes as rows of the Quotes sheet.
type QuoteSheetRepository struct {
	store *recordstore.Store
	col   recordstore.Collection
}

var _ interfaces.IQuoteRepository = (*QuoteSheetRepository)(nil)

func NewQuoteSheetRepository(store *recordstore.Store, spreadsheetID string) *QuoteSheetRepository {
	return &QuoteSheetRepository{
		store: store,
		col: recordstore.Collection{
			SpreadsheetID: spreadsheetID,
			Sheet:         "Quotes",
			Columns:       quotesColumns,
		},
	}
}

func (r *QuoteSheetRepository) Create(ctx context.Context, q entities.Quote) error {
	if err := r.store.Append(ctx, r.col, quoteToRow(q)); err != nil {
		return err
	}
	log.Printf("[quotes][repository] quote appended quote_id=%s order_id=%s", q.ID, q.OrderID)
	return nil
}

func (r *QuoteSheetRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Quote, error) {
	rows, err := r.store.Read(ctx, r.col)
	if err != nil {
		return nil, err
	}
	var quotes []entities.Quote
	for _, row := range rows {
		if row["order_id"] == orderID {
			quotes = append(quotes, quoteFromRow(row))
		}
	}
	return quotes, nil
}

// MarkSelected flips the selected flag on one quote row. The quote must
// already exist; a vanished row is an error the caller may choose to ignore.
func (r *QuoteSheetRepository) MarkSelected(ctx context.Context, quoteID string) error {
	rowIndex, row, err := r.store.FindByKey(ctx, r.col, "quote_id", quoteID)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("quote row not found: %s", quoteID)
	}
	row["selected"] = "TRUE"
	return r.store.UpdateAt(ctx, r.col, rowIndex, row)
}

func quoteToRow(q entities.Quote) recordstore.Row {
	selected := ""
	if q.Selected {
		selected = "TRUE"
	}
	return recordstore.Row{
		"quote_id":        q.ID,
		"order_id":        q.OrderID,
		"appraiser_id":    q.AppraiserID,
		"appraiser_name":  q.AppraiserName,
		"appraiser_email": q.AppraiserEmail,
		"fee":             strconv.FormatFloat(q.Fee, 'g', -1, 64),
		"turnaround_days": strconv.Itoa(q.TurnaroundDays),
		"notes":           q.Notes,
		"submitted_at":    formatTime(q.SubmittedAt),
		"selected":        selected,
	}
}

func quoteFromRow(row recordstore.Row) entities.Quote {
	fee, _ := strconv.ParseFloat(row["fee"], 64)
	turnaround, _ := strconv.Atoi(row["turnaround_days"])
	return entities.Quote{
		ID:             row["quote_id"],
		OrderID:        row["order_id"],
		AppraiserID:    row["appraiser_id"],
		AppraiserName:  row["appraiser_name"],
		AppraiserEmail: row["appraiser_email"],
		Fee:            fee,
		TurnaroundDays: turnaround,
		Notes:          row["notes"],
		SubmittedAt:    parseTime(row["submitted_at"]),
		Selected:       row["selected"] == "TRUE",
	}
}
