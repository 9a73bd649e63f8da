package recordstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeValues is an in-memory ValuesAPI. Sheets are stored as raw value
// grids keyed by "<spreadsheetID>/<sheet>".
type fakeValues struct {
	sheets  map[string][][]string
	getErr  error
	putErr  error
	updates []string
}

func newFakeValues() *fakeValues {
	return &fakeValues{sheets: map[string][][]string{}}
}

func sheetKey(spreadsheetID, rng string) string {
	sheet, _, _ := strings.Cut(rng, "!")
	return spreadsheetID + "/" + sheet
}

func (f *fakeValues) Get(_ context.Context, spreadsheetID, readRange string) ([][]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.sheets[sheetKey(spreadsheetID, readRange)], nil
}

func (f *fakeValues) Append(_ context.Context, spreadsheetID, appendRange string, row []string) error {
	if f.putErr != nil {
		return f.putErr
	}
	k := sheetKey(spreadsheetID, appendRange)
	f.sheets[k] = append(f.sheets[k], row)
	return nil
}

func (f *fakeValues) Update(_ context.Context, spreadsheetID, updateRange string, row []string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.updates = append(f.updates, updateRange)
	// parse "Sheet!A<N>:Z<N>"
	sheet, cells, ok := strings.Cut(updateRange, "!")
	if !ok {
		return fmt.Errorf("bad range %q", updateRange)
	}
	n := 0
	if _, err := fmt.Sscanf(cells, "A%d", &n); err != nil {
		return fmt.Errorf("bad range %q: %w", updateRange, err)
	}
	k := spreadsheetID + "/" + sheet
	grid := f.sheets[k]
	for len(grid) < n {
		grid = append(grid, nil)
	}
	grid[n-1] = row
	f.sheets[k] = grid
	return nil
}

var testCol = Collection{
	SpreadsheetID: "sheet-1",
	Sheet:         "Orders",
	Columns:       []string{"order_id", "status", "city"},
}

func seed(f *fakeValues, rows ...[]string) {
	grid := [][]string{{"order_id", "status", "city"}}
	grid = append(grid, rows...)
	f.sheets["sheet-1/Orders"] = grid
}

func TestStore_Read(t *testing.T) {
	t.Run("pads short rows", func(t *testing.T) {
		f := newFakeValues()
		seed(f, []string{"ORD-1", "pending"})
		s := New(f)

		rows, err := s.Read(context.Background(), testCol)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0]["order_id"] != "ORD-1" || rows[0]["city"] != "" {
			t.Fatalf("unexpected row: %v", rows[0])
		}
	})

	t.Run("header only means empty", func(t *testing.T) {
		f := newFakeValues()
		seed(f)
		s := New(f)

		rows, err := s.Read(context.Background(), testCol)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(rows))
		}
	})

	t.Run("transport failure wraps ErrStoreUnavailable", func(t *testing.T) {
		f := newFakeValues()
		f.getErr = errors.New("auth expired")
		s := New(f)

		_, err := s.Read(context.Background(), testCol)
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestStore_FindByKey(t *testing.T) {
	f := newFakeValues()
	seed(f,
		[]string{"ORD-1", "pending", "Chicago"},
		[]string{"ORD-2", "engaged", "Denver"},
		[]string{"ORD-2", "closed", "Duplicate"},
	)
	s := New(f)

	t.Run("found returns sheet row index", func(t *testing.T) {
		idx, row, err := s.FindByKey(context.Background(), testCol, "order_id", "ORD-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// first match wins on duplicate keys; row 1 is the header
		if idx != 3 {
			t.Fatalf("expected row index 3, got %d", idx)
		}
		if row["city"] != "Denver" {
			t.Fatalf("unexpected row: %v", row)
		}
	})

	t.Run("missing key yields nil row, nil error", func(t *testing.T) {
		idx, row, err := s.FindByKey(context.Background(), testCol, "order_id", "ORD-404")
		if err != nil || row != nil || idx != 0 {
			t.Fatalf("expected not-found, got idx=%d row=%v err=%v", idx, row, err)
		}
	})
}

func TestStore_AppendAndUpdateAt(t *testing.T) {
	f := newFakeValues()
	seed(f, []string{"ORD-1", "pending", "Chicago"})
	s := New(f)

	err := s.Append(context.Background(), testCol, Row{"order_id": "ORD-2", "status": "pending"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	grid := f.sheets["sheet-1/Orders"]
	got := grid[len(grid)-1]
	if got[0] != "ORD-2" || got[1] != "pending" || got[2] != "" {
		t.Fatalf("unexpected appended row: %v", got)
	}

	err = s.UpdateAt(context.Background(), testCol, 2, Row{"order_id": "ORD-1", "status": "rfp_sent", "city": "Chicago"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.sheets["sheet-1/Orders"][1][1] != "rfp_sent" {
		t.Fatalf("row not updated in place: %v", f.sheets["sheet-1/Orders"][1])
	}
	if f.updates[0] != "Orders!A2:Z2" {
		t.Fatalf("unexpected update range: %v", f.updates)
	}

	t.Run("write failure wraps ErrStoreUnavailable", func(t *testing.T) {
		f.putErr = errors.New("503")
		if err := s.Append(context.Background(), testCol, Row{}); !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
		if err := s.UpdateAt(context.Background(), testCol, 2, Row{}); !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}
