package routes

import (
	"appraisal_desk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addAppraisalRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	matchingHandler *handlers.MatchingHandler,
	rfpHandler *handlers.RFPHandler,
	quoteHandler *handlers.QuoteHandler,
	engagementHandler *handlers.EngagementHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id/appraisers", matchingHandler.FindAppraisers)
		orders.POST("/:order_id/rfp", rfpHandler.SendRFP)
		orders.POST("/:order_id/quotes", quoteHandler.RecordQuote)
		orders.GET("/:order_id/quotes/summary", quoteHandler.GetSummary)
		orders.POST("/:order_id/quotes/summary/send", quoteHandler.SendSummary)
		orders.POST("/:order_id/engagement", engagementHandler.EngageAppraiser)
	}
}
