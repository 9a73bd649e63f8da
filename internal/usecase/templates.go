package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"appraisal_desk/internal/domain/entities"
)

// Plain-text letter rendering for the RFP, engagement, decline, and quote
// summary emails. Letters are deliberately plain text so they survive every
// appraiser mail client.

const sectionRule = "─────────────────────────────────"

// LetterContext carries the sender identity stamped into every letter.
type LetterContext struct {
	CompanyName  string
	CompanyEmail string
}

func renderRFP(lc LetterContext, order entities.Order, appraiserName, deadline string) (subject, body string) {
	subject = fmt.Sprintf("Quote Request - %s Appraisal - %s, %s",
		orDefault(order.PropertyType, "Commercial"), order.PropertyCity, order.PropertyState)

	special := ""
	if order.SpecialInstructions != "" {
		special = "SPECIAL INSTRUCTIONS: " + order.SpecialInstructions
	}

	body = fmt.Sprintf(`Dear %s,

We have an appraisal assignment available and would like to request your fee and turnaround quote.

ORDER DETAILS
%s
Order #: %s
Property: %s
Type: %s
Scope: %s
Urgency: %s

LOAN INFORMATION
%s
Loan Amount: $%s
Purpose: %s

QUOTE DEADLINE
%s
Please submit your quote by: %s

TO SUBMIT YOUR QUOTE
%s
Reply to this email with:
• Your fee for this assignment
• Your turnaround time (business days)
• Any questions or clarifications needed

If you are unavailable or unable to take this assignment, please let us know so we can reassign promptly.

%s

Best regards,
%s Order Desk
`,
		orDefault(appraiserName, "Appraiser"),
		sectionRule,
		order.ID,
		order.PropertyAddress,
		order.PropertyType,
		orDefault(order.Scope, "Full Appraisal"),
		orDefault(order.Urgency, "Standard"),
		sectionRule,
		formatMoney(parseAmount(order.LoanAmount), 0),
		orDefault(order.LoanPurpose, "N/A"),
		sectionRule,
		deadline,
		sectionRule,
		special,
		lc.CompanyName,
	)
	return subject, body
}

func renderEngagement(lc LetterContext, order entities.Order, quote entities.Quote, dueDate string) (subject, body string) {
	address := order.PropertyAddress
	if len(address) > 40 {
		address = address[:40]
	}
	subject = fmt.Sprintf("Engagement Confirmation - Order #%s - %s", order.ID, address)

	special := ""
	if order.SpecialInstructions != "" {
		special = fmt.Sprintf("SPECIAL INSTRUCTIONS\n%s\n%s\n", sectionRule, order.SpecialInstructions)
	}

	body = fmt.Sprintf(`Dear %s,

Congratulations! You have been selected for the following appraisal assignment.

ENGAGEMENT DETAILS
═══════════════════════════════════════════════════════════════════════════

Order Number:      %s
Property Address:  %s
Property Type:     %s
Scope of Work:     %s

AGREED TERMS
%s
Fee:               $%s
Due Date:          %s
Turnaround:        %d business days

LOAN INFORMATION
%s
Loan Amount:       $%s
Loan Purpose:      %s

CLIENT CONTACT
%s
Name:              %s
Email:             %s

%sNEXT STEPS
%s
1. Please REPLY to confirm acceptance of this assignment
2. Schedule property inspection
3. Submit completed report by %s

DELIVERY REQUIREMENTS
%s
• PDF format required
• XML/MISMO format if available
• Email completed report to this address

If you have any questions or need to discuss the assignment, please
contact us immediately.

Best regards,
%s Order Desk
%s
`,
		orDefault(quote.AppraiserName, "Appraiser"),
		order.ID,
		order.PropertyAddress,
		order.PropertyType,
		orDefault(order.Scope, "Full Appraisal"),
		sectionRule,
		formatMoney(quote.Fee, 2),
		dueDate,
		quote.TurnaroundDays,
		sectionRule,
		formatMoney(parseAmount(order.LoanAmount), 0),
		orDefault(order.LoanPurpose, "N/A"),
		sectionRule,
		orDefault(order.ContactName, "N/A"),
		orDefault(order.ContactEmail, "N/A"),
		special,
		sectionRule,
		dueDate,
		sectionRule,
		lc.CompanyName,
		lc.CompanyEmail,
	)
	return subject, body
}

func renderDecline(lc LetterContext, order entities.Order, quote entities.Quote) (subject, body string) {
	subject = fmt.Sprintf("Quote Update - Order #%s", order.ID)

	body = fmt.Sprintf(`Dear %s,

Thank you for submitting your quote for the appraisal assignment:

Order #%s
Property: %s

We appreciate your prompt response. However, we have selected another
appraiser for this particular assignment.

We value our relationship with you and look forward to working together
on future opportunities.

Best regards,
%s Order Desk
`,
		orDefault(quote.AppraiserName, "Appraiser"),
		order.ID,
		order.PropertyAddress,
		lc.CompanyName,
	)
	return subject, body
}

func renderSummary(lc LetterContext, summary QuoteSummary) (subject, body string) {
	subject = fmt.Sprintf("Appraisal Quotes Ready - Order #%s", summary.OrderID)

	var rows []string
	for _, q := range summary.Quotes {
		rec := ""
		if q.Recommended {
			rec = "★ RECOMMENDED"
		}
		rows = append(rows, fmt.Sprintf("  %-25s $%8s    %3d days    %s    %s",
			orDefault(q.AppraiserName, "N/A"),
			formatMoney(q.Fee, 0),
			q.TurnaroundDays,
			formatQuality(q.QualityScore),
			rec))
	}

	recText := ""
	if summary.Recommended != nil {
		r := summary.Recommended
		recText = fmt.Sprintf(`
RECOMMENDATION
%s
We recommend %s based on their combination of
competitive fee ($%s), turnaround (%d days),
and quality rating (%s/5.0).
`,
			sectionRule, r.AppraiserName, formatMoney(r.Fee, 0), r.TurnaroundDays, formatQuality(r.QualityScore))
	}

	body = fmt.Sprintf(`Quote summary for Order #%s

PROPERTY
%s
%s

QUOTES RECEIVED (%d)
%s
  %-25s %10s    %8s    Rating

%s
%s
NEXT STEPS
%s
Reply to this email with your selection, or we will proceed with the
recommended appraiser if no response is received within 24 hours.

Best regards,
%s Order Desk
`,
		summary.OrderID,
		sectionRule,
		orDefault(summary.PropertyAddress, "N/A"),
		len(summary.Quotes),
		sectionRule,
		"Appraiser", "Fee", "Time",
		strings.Join(rows, "\n"),
		recText,
		sectionRule,
		lc.CompanyName,
	)
	return subject, body
}

// formatMoney renders an amount with comma-grouped thousands and the given
// number of decimal places, e.g. 3500 -> "3,500" or "3,500.00".
func formatMoney(amount float64, decimals int) string {
	s := strconv.FormatFloat(amount, 'f', decimals, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	if hasFrac {
		out += "." + fracPart
	}
	return out
}

func formatQuality(q float64) string {
	return strconv.FormatFloat(q, 'g', -1, 64)
}

// parseAmount reads a raw money cell, tolerating blanks and junk as zero.
func parseAmount(cell string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return f
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
