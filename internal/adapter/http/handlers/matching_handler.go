package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"appraisal_desk/internal/usecase"
	"appraisal_desk/pkg"

	"github.com/gin-gonic/gin"
)

// MatchingHandler serves the read-only appraiser matching endpoint.

type MatchingHandler struct {
	matching usecase.IMatchingUseCase
}

func NewMatchingHandler(matching usecase.IMatchingUseCase) *MatchingHandler {
	return &MatchingHandler{matching: matching}
}

// FindAppraisers matches appraisers for an order. Query parameters override
// the order's own criteria: property_state, property_type, client_id,
// excluded (comma-separated appraiser IDs), limit.
func (h *MatchingHandler) FindAppraisers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			appErr := pkg.NewDomainErrorSimple("INVALID_LIMIT", "limit must be a positive integer", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = n
	}

	var excluded []string
	if raw := c.Query("excluded"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				excluded = append(excluded, id)
			}
		}
	}

	result, err := h.matching.FindAppraisers(c.Request.Context(), usecase.FindParams{
		OrderID:       c.Param("order_id"),
		PropertyState: c.Query("property_state"),
		PropertyType:  c.Query("property_type"),
		ClientID:      c.Query("client_id"),
		ExcludedIDs:   excluded,
		Limit:         limit,
	})
	if err != nil {
		appErr := mapOrderDeskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}
