package routes

import (
	"fmt"
	"os"
	"time"

	_ "oficina_os/docs" // generated swagger docs
	"oficina_os/internal/adapter/http/handlers"
	"oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/infrastructure/config"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/infrastructure/payments"
	"oficina_os/internal/usecase"
	"oficina_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the whole service together and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Environment)

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("starting workshop service")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	clientRepo := repository.NewClientDynamoRepository(ddb)
	orderRepo := repository.NewMaintenanceOrderDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	maintenanceUseCase := usecase.NewMaintenanceUseCase(orderRepo, clientRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, clientHandler, maintenanceHandler, reportHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func setupLogging(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
