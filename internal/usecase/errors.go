package usecase

import (
	"errors"
	"strings"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrAppraiserNotFound = errors.New("appraiser not found")
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrDuplicateQuote    = errors.New("quote already exists for this order and appraiser")
	ErrEmptyPanel        = errors.New("no appraisers found in panel")
	ErrNoRFPTargets      = errors.New("no appraisers to send rfp to")
	ErrNoQuotes          = errors.New("no quotes found for this order")
	ErrNoClientEmail     = errors.New("no client email on order")
	ErrSummarySendFailed = errors.New("failed to send quote summary")
)

// ValidationError carries every violated rule for an input, not just the
// first. Callers surface the full list to the client.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
