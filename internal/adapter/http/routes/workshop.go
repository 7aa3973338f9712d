package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients      = "/clients"
	PathMaintenances = "/maintenances"
	PathReports      = "/reports"
	PathPayments     = "/payments"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	reportHandler *handlers.ReportHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PUT("/:id", clientHandler.Update)
	}

	maintenances := rg.Group(PathMaintenances)
	{
		maintenances.POST("", maintenanceHandler.Create)
		maintenances.GET("", maintenanceHandler.List)
		maintenances.GET("/summary", reportHandler.MonthlySummary)
		maintenances.GET("/:id", maintenanceHandler.GetByID)
		maintenances.PATCH("/:id", maintenanceHandler.Update)
		maintenances.DELETE("/:id", maintenanceHandler.Delete)
		maintenances.PATCH("/:id/complete", maintenanceHandler.Complete)
		maintenances.PATCH("/:id/cancel", maintenanceHandler.Cancel)
		maintenances.PATCH("/:id/reminder", maintenanceHandler.AdvanceReminder)
	}

	reports := rg.Group(PathReports)
	{
		reports.POST("/financial", reportHandler.FinancialReport)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:maintenance_id", paymentHandler.CreateByMaintenanceID)
		payments.GET("/:maintenance_id", paymentHandler.GetByMaintenanceID)
	}
}
