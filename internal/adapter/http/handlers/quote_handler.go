package handlers

import (
	"net/http"

	request "appraisal_desk/internal/adapter/http/dto/request"
	response "appraisal_desk/internal/adapter/http/dto/response"
	"appraisal_desk/internal/usecase"
	"appraisal_desk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles quote submission and the client-facing summary.

type QuoteHandler struct {
	quotes usecase.IQuoteUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

func (h *QuoteHandler) RecordQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.quotes.RecordQuote(c.Request.Context(), usecase.QuoteInput{
		OrderID:        c.Param("order_id"),
		AppraiserID:    payload.AppraiserID,
		Fee:            payload.Fee,
		TurnaroundDays: payload.TurnaroundDays,
		Notes:          payload.Notes,
	})
	if err != nil {
		appErr := mapOrderDeskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetSummary(c *gin.Context) {
	summary, err := h.quotes.GetSummary(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderDeskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *QuoteHandler) SendSummary(c *gin.Context) {
	var payload request.SummarySendRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	delivery, err := h.quotes.SendSummary(c.Request.Context(), c.Param("order_id"), payload.DryRun)
	if err != nil {
		appErr := mapOrderDeskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, delivery)
}
