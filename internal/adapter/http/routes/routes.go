package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "jobcard_service/docs" // This will be auto-generated
	"jobcard_service/internal/adapter/http/handlers"
	"jobcard_service/internal/adapter/http/middleware"
	repository2 "jobcard_service/internal/adapter/persistence/repository"
	"jobcard_service/internal/infrastructure/billing"
	"jobcard_service/internal/infrastructure/database"
	"jobcard_service/internal/infrastructure/events"
	"jobcard_service/internal/infrastructure/identity"
	"jobcard_service/internal/usecase"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.MustConnectDynamoDB(context.Background())

	jobCardRepo := repository2.NewJobCardDynamoRepository(ddb)
	identityProvider := identity.NewJWTProviderFromEnv()

	var invoiceGateway interfaces.IInvoiceGateway
	gateway, err := billing.NewInvoiceGateway(ddb, os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Invoice gateway not configured: %v", err)
	} else {
		invoiceGateway = gateway
	}

	var publisher interfaces.IEventPublisher
	rabbit, err := events.NewRabbitPublisherFromEnv()
	if err != nil {
		log.Printf("Event publisher not configured: %v", err)
	} else if rabbit != nil {
		publisher = rabbit
	}

	jobCardUseCase := usecase.NewJobCardUseCase(jobCardRepo, identityProvider, publisher)
	workSessionUseCase := usecase.NewWorkSessionUseCase(jobCardRepo, identityProvider, publisher)
	reviewUseCase := usecase.NewReviewUseCase(jobCardRepo, identityProvider, invoiceGateway, publisher)

	jobCardHandler := handlers.NewJobCardHandler(jobCardUseCase)
	workSessionHandler := handlers.NewWorkSessionHandler(workSessionUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Authenticate(identityProvider))
	addJobCardRoutes(authed, jobCardHandler, workSessionHandler, reviewHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
