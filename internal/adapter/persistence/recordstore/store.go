package recordstore

import (
	"context"
	"errors"
	"fmt"
)

// ErrStoreUnavailable wraps any transport or auth failure talking to the
// external record store. Read paths treat it as fatal for the operation;
// write paths that run after an irreversible send downgrade it to a warning.
var ErrStoreUnavailable = errors.New("record store unavailable")

// Row is one data row keyed by column name. Cells absent from the underlying
// range default to the empty string.
type Row map[string]string

// Collection names one sheet-backed table: a spreadsheet, a sheet within it,
// and the fixed column order rows are serialized with. Row 1 of every sheet
// is the header; data rows are addressed 1-indexed after it.
type Collection struct {
	SpreadsheetID string
	Sheet         string
	Columns       []string
}

// ValuesAPI is the raw range-oriented transport underneath the store.
// Implemented by the Google Sheets client and by an in-memory fake in tests.
type ValuesAPI interface {
	Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	Append(ctx context.Context, spreadsheetID, appendRange string, row []string) error
	Update(ctx context.Context, spreadsheetID, updateRange string, row []string) error
}

// Store adapts the range-oriented transport into typed row operations.
// It holds no state and performs no caching: every read goes to the external
// store, which is the only system of record between invocations.
type Store struct {
	api ValuesAPI
}

func New(api ValuesAPI) *Store {
	return &Store{api: api}
}

// Read returns every data row of the collection in sheet order. Short rows
// are padded so each row has a cell for every header column.
func (s *Store) Read(ctx context.Context, col Collection) ([]Row, error) {
	values, err := s.api.Get(ctx, col.SpreadsheetID, col.Sheet+"!A:Z")
	if err != nil {
		return nil, unavailable("read", col, err)
	}
	if len(values) < 2 {
		return nil, nil
	}

	headers := values[0]
	rows := make([]Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FindByKey scans the collection linearly and returns the first row whose
// keyColumn equals keyValue, together with its 1-indexed sheet row number
// (data row i maps to i+2 because of the header). A nil row with a nil error
// means not found. Keys are expected unique but not enforced here.
func (s *Store) FindByKey(ctx context.Context, col Collection, keyColumn, keyValue string) (int, Row, error) {
	rows, err := s.Read(ctx, col)
	if err != nil {
		return 0, nil, err
	}
	for i, row := range rows {
		if row[keyColumn] == keyValue {
			return i + 2, row, nil
		}
	}
	return 0, nil, nil
}

// Append adds one row to the end of the collection, serialized in the
// collection's column order. Missing cells serialize as empty strings.
func (s *Store) Append(ctx context.Context, col Collection, row Row) error {
	if err := s.api.Append(ctx, col.SpreadsheetID, col.Sheet+"!A:Z", serialize(col.Columns, row)); err != nil {
		return unavailable("append", col, err)
	}
	return nil
}

// UpdateAt rewrites the row at the given 1-indexed sheet row number. The
// caller is expected to pass an index previously obtained from FindByKey;
// the read-then-write pair is not transactional (last writer wins).
func (s *Store) UpdateAt(ctx context.Context, col Collection, rowIndex int, row Row) error {
	rng := fmt.Sprintf("%s!A%d:Z%d", col.Sheet, rowIndex, rowIndex)
	if err := s.api.Update(ctx, col.SpreadsheetID, rng, serialize(col.Columns, row)); err != nil {
		return unavailable("update", col, err)
	}
	return nil
}

func serialize(columns []string, row Row) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = row[c]
	}
	return out
}

func unavailable(op string, col Collection, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrStoreUnavailable, op, col.Sheet, err)
}
