package routes

import (
	"context"
	"log"
	"strconv"

	_ "appraisal_desk/docs" // swag-generated
	"appraisal_desk/internal/adapter/http/handlers"
	"appraisal_desk/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	a, err := app.New(context.Background())
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err.Error())
	}
	getRoutes(a)

	if err := router.Run(":" + strconv.Itoa(a.Config.HTTP.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(a *app.App) {
	orderHandler := handlers.NewOrderHandler(a.Intake)
	matchingHandler := handlers.NewMatchingHandler(a.Matching)
	rfpHandler := handlers.NewRFPHandler(a.RFP)
	quoteHandler := handlers.NewQuoteHandler(a.Quotes)
	engagementHandler := handlers.NewEngagementHandler(a.Engagement)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAppraisalRoutes(v1, orderHandler, matchingHandler, rfpHandler, quoteHandler, engagementHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
