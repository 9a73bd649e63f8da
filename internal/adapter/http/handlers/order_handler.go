package handlers

import (
	"net/http"

	request "appraisal_desk/internal/adapter/http/dto/request"
	response "appraisal_desk/internal/adapter/http/dto/response"
	"appraisal_desk/internal/usecase"
	"appraisal_desk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for order intake.

type OrderHandler struct {
	intake usecase.IIntakeUseCase
}

func NewOrderHandler(intake usecase.IIntakeUseCase) *OrderHandler {
	return &OrderHandler{intake: intake}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.intake.CreateOrder(c.Request.Context(), usecase.OrderInput{
		PropertyAddress:     payload.PropertyAddress,
		PropertyCity:        payload.PropertyCity,
		PropertyState:       payload.PropertyState,
		PropertyType:        payload.PropertyType,
		LoanAmount:          payload.LoanAmount,
		LoanPurpose:         payload.LoanPurpose,
		Scope:               payload.Scope,
		Urgency:             payload.Urgency,
		ClientID:            payload.ClientID,
		ContactName:         payload.ContactName,
		ContactEmail:        payload.ContactEmail,
		SpecialInstructions: payload.SpecialInstructions,
	})
	if err != nil {
		appErr := mapOrderDeskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}
