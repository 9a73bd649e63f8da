package sheets

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"appraisal_desk/internal/config"
)

// Values implements recordstore.ValuesAPI against the Google Sheets API.
type Values struct {
	svc *gsheets.Service
}

// NewValues creates a Sheets values client.
//
// Credential resolution (cloud-friendly first, mirroring the original
// deployment): when a refresh token plus OAuth client pair is configured the
// client authenticates with those; otherwise it falls back to application
// default credentials.
func NewValues(ctx context.Context, cfg config.Google) (*Values, error) {
	svc, err := newService(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Values{svc: svc}, nil
}

func newService(ctx context.Context, cfg config.Google) (*gsheets.Service, error) {
	if cfg.RefreshToken != "" && cfg.ClientID != "" && cfg.ClientSecret != "" {
		conf := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gsheets.SpreadsheetsScope},
		}
		ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
		return gsheets.NewService(ctx, option.WithTokenSource(ts))
	}
	log.Printf("[store][sheets] no refresh token configured, using application default credentials")
	return gsheets.NewService(ctx, option.WithScopes(gsheets.SpreadsheetsScope))
}

func (v *Values) Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := v.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		out = append(out, row)
	}
	return out, nil
}

func (v *Values) Append(ctx context.Context, spreadsheetID, appendRange string, row []string) error {
	_, err := v.svc.Spreadsheets.Values.
		Append(spreadsheetID, appendRange, valueRange(row)).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (v *Values) Update(ctx context.Context, spreadsheetID, updateRange string, row []string) error {
	_, err := v.svc.Spreadsheets.Values.
		Update(spreadsheetID, updateRange, valueRange(row)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

func valueRange(row []string) *gsheets.ValueRange {
	cells := make([]interface{}, len(row))
	for i, c := range row {
		cells[i] = c
	}
	return &gsheets.ValueRange{Values: [][]interface{}{cells}}
}
