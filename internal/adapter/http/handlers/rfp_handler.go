package handlers

import (
	"net/http"

	request "appraisal_desk/internal/adapter/http/dto/request"
	"appraisal_desk/internal/usecase"
	"appraisal_desk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRFPPayload = pkg.NewDomainErrorSimple("INVALID_RFP_INPUT", "Invalid RFP payload", http.StatusBadRequest)

// RFPHandler handles RFP broadcast requests.

type RFPHandler struct {
	rfp usecase.IRFPUseCase
}

func NewRFPHandler(rfp usecase.IRFPUseCase) *RFPHandler {
	return &RFPHandler{rfp: rfp}
}

// SendRFP emails quote requests to appraisers. An empty body is accepted and
// means auto-match.
func (h *RFPHandler) SendRFP(c *gin.Context) {
	var payload request.RFPRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRFPPayload.HTTPStatus, errInvalidRFPPayload.ToHTTPError())
			return
		}
	}

	result, err := h.rfp.SendRFP(c.Request.Context(), usecase.RFPParams{
		OrderID:      c.Param("order_id"),
		AppraiserIDs: payload.AppraiserIDs,
		DryRun:       payload.DryRun,
	})
	if err != nil {
		appErr := mapOrderDeskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}
