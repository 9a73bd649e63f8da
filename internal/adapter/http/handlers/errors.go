package handlers

import (
	"errors"
	"net/http"

	"appraisal_desk/internal/adapter/persistence/recordstore"
	"appraisal_desk/internal/usecase"
	"appraisal_desk/pkg"
)

// mapOrderDeskError translates use case errors into the HTTP error envelope.
// Shared by every handler so the same domain error always maps to the same
// status and code.
func mapOrderDeskError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewValidationError("VALIDATION_FAILED", "Request validation failed", verr.Violations, http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppraiserNotFound):
		return pkg.NewDomainErrorSimple("APPRAISER_NOT_FOUND", "Appraiser not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateQuote):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_EXISTS", "A quote from this appraiser already exists for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyPanel):
		return pkg.NewDomainErrorSimple("PANEL_EMPTY", "No appraisers found in panel", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoRFPTargets):
		return pkg.NewDomainErrorSimple("NO_RFP_TARGETS", "No appraisers to send RFP to", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoQuotes):
		return pkg.NewDomainErrorSimple("NO_QUOTES", "No quotes found for this order", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoClientEmail):
		return pkg.NewDomainErrorSimple("NO_CLIENT_EMAIL", "No client email on order", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSummarySendFailed):
		return pkg.NewDomainError("NOTIFICATION_FAILED", "Failed to send notification email", err, http.StatusBadGateway)
	case errors.Is(err, recordstore.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Record store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
