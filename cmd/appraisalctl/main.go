// Command appraisalctl drives the appraisal order lifecycle from the shell.
// Every subcommand prints a JSON envelope to stdout and exits non-zero on
// failure, so it composes with jq and cron.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"appraisal_desk/internal/app"
	"appraisal_desk/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

const usageText = `Usage: appraisalctl <command> [flags]

Commands:
  receive-order      validate and persist a new appraisal order
  find-appraisers    rank qualified panel appraisers for an order
  send-rfp           email quote requests to matched appraisers
  record-quote       record an appraiser's quote for an order
  summarize-quotes   show or email the ranked quote summary
  engage             engage an appraiser and notify the rest

Run "appraisalctl <command> -h" for the flags of each command.
`

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		fmt.Fprint(os.Stderr, usageText)
		return
	}

	a, err := app.New(context.Background())
	if err != nil {
		fail(fmt.Errorf("wiring failed: %w", err))
	}

	ctx := context.Background()
	switch cmd {
	case "receive-order":
		runReceiveOrder(ctx, a, args)
	case "find-appraisers":
		runFindAppraisers(ctx, a, args)
	case "send-rfp":
		runSendRFP(ctx, a, args)
	case "record-quote":
		runRecordQuote(ctx, a, args)
	case "summarize-quotes":
		runSummarizeQuotes(ctx, a, args)
	case "engage":
		runEngage(ctx, a, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usageText)
		os.Exit(2)
	}
}

func runReceiveOrder(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("receive-order", flag.ExitOnError)
	var in usecase.OrderInput
	fs.StringVar(&in.PropertyAddress, "address", "", "property street address (city/state parsed if comma-separated)")
	fs.StringVar(&in.PropertyCity, "city", "", "property city (overrides address parse)")
	fs.StringVar(&in.PropertyState, "state", "", "property state code (overrides address parse)")
	fs.StringVar(&in.PropertyType, "type", "", "property type (Office, Retail, Industrial, Multifamily, Mixed-Use, Land, Hospitality)")
	fs.StringVar(&in.LoanAmount, "loan-amount", "", "loan amount, free text")
	fs.StringVar(&in.LoanPurpose, "loan-purpose", "", "loan purpose")
	fs.StringVar(&in.Scope, "scope", "", "appraisal scope (default Full Appraisal)")
	fs.StringVar(&in.Urgency, "urgency", "", "urgency (default Standard)")
	fs.StringVar(&in.ClientID, "client", "", "client identifier")
	fs.StringVar(&in.ContactName, "contact-name", "", "client contact name")
	fs.StringVar(&in.ContactEmail, "contact-email", "", "client contact email")
	fs.StringVar(&in.SpecialInstructions, "instructions", "", "special instructions")
	fs.Parse(args)

	order, err := a.Intake.CreateOrder(ctx, in)
	if err != nil {
		fail(err)
	}
	ok(order)
}

func runFindAppraisers(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("find-appraisers", flag.ExitOnError)
	orderID := fs.String("order", "", "order ID")
	state := fs.String("state", "", "property state override")
	propType := fs.String("type", "", "property type override")
	clientID := fs.String("client", "", "client ID override")
	excluded := fs.String("excluded", "", "comma-separated appraiser IDs to skip")
	limit := fs.Int("limit", 0, "maximum candidates to return (0 = all)")
	fs.Parse(args)

	result, err := a.Matching.FindAppraisers(ctx, usecase.FindParams{
		OrderID:       *orderID,
		PropertyState: *state,
		PropertyType:  *propType,
		ClientID:      *clientID,
		ExcludedIDs:   splitIDs(*excluded),
		Limit:         *limit,
	})
	if err != nil {
		fail(err)
	}
	ok(result)
}

func runSendRFP(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("send-rfp", flag.ExitOnError)
	orderID := fs.String("order", "", "order ID")
	appraisers := fs.String("appraisers", "", "comma-separated appraiser IDs (empty = auto-match)")
	dryRun := fs.Bool("dry-run", false, "render letters without sending")
	fs.Parse(args)

	result, err := a.RFP.SendRFP(ctx, usecase.RFPParams{
		OrderID:      *orderID,
		AppraiserIDs: splitIDs(*appraisers),
		DryRun:       *dryRun,
	})
	if err != nil {
		fail(err)
	}
	ok(result)
}

func runRecordQuote(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("record-quote", flag.ExitOnError)
	orderID := fs.String("order", "", "order ID")
	appraiserID := fs.String("appraiser", "", "appraiser ID")
	fee := fs.Float64("fee", 0, "quoted fee in dollars")
	turnaround := fs.Int("turnaround", 0, "turnaround in business days")
	notes := fs.String("notes", "", "optional quote notes")
	fs.Parse(args)

	quote, err := a.Quotes.RecordQuote(ctx, usecase.QuoteInput{
		OrderID:        *orderID,
		AppraiserID:    *appraiserID,
		Fee:            *fee,
		TurnaroundDays: *turnaround,
		Notes:          *notes,
	})
	if err != nil {
		fail(err)
	}
	ok(quote)
}

func runSummarizeQuotes(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("summarize-quotes", flag.ExitOnError)
	orderID := fs.String("order", "", "order ID")
	send := fs.Bool("send", false, "email the summary to the client contact")
	dryRun := fs.Bool("dry-run", false, "with -send, render the email without sending")
	fs.Parse(args)

	if *send {
		delivery, err := a.Quotes.SendSummary(ctx, *orderID, *dryRun)
		if err != nil {
			fail(err)
		}
		ok(delivery)
		return
	}

	summary, err := a.Quotes.GetSummary(ctx, *orderID)
	if err != nil {
		fail(err)
	}
	ok(summary)
}

func runEngage(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("engage", flag.ExitOnError)
	orderID := fs.String("order", "", "order ID")
	quoteID := fs.String("quote", "", "quote ID to engage")
	auto := fs.Bool("auto", false, "engage the top-ranked quote")
	dryRun := fs.Bool("dry-run", false, "render letters without sending or persisting")
	fs.Parse(args)

	result, err := a.Engagement.EngageAppraiser(ctx, usecase.EngageParams{
		OrderID: *orderID,
		QuoteID: *quoteID,
		Auto:    *auto,
		DryRun:  *dryRun,
	})
	if err != nil {
		fail(err)
	}
	ok(result)
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func ok(data any) {
	printJSON(envelope{Success: true, Data: data})
}

func fail(err error) {
	printJSON(envelope{Success: false, Error: err.Error()})
	os.Exit(1)
}

func printJSON(v envelope) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
}
