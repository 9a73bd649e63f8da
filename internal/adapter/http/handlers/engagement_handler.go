package handlers

import (
	"net/http"

	request "appraisal_desk/internal/adapter/http/dto/request"
	"appraisal_desk/internal/usecase"
	"appraisal_desk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEngagementPayload = pkg.NewDomainErrorSimple("INVALID_ENGAGEMENT_INPUT", "Invalid engagement payload", http.StatusBadRequest)

// EngagementHandler finalizes appraiser selection for an order.

type EngagementHandler struct {
	engagement usecase.IEngagementUseCase
}

func NewEngagementHandler(engagement usecase.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

func (h *EngagementHandler) EngageAppraiser(c *gin.Context) {
	var payload request.EngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	result, err := h.engagement.EngageAppraiser(c.Request.Context(), usecase.EngageParams{
		OrderID: c.Param("order_id"),
		QuoteID: payload.QuoteID,
		Auto:    payload.Auto,
		DryRun:  payload.DryRun,
	})
	if err != nil {
		appErr := mapOrderDeskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}
