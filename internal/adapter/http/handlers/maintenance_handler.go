package handlers

import (
	"errors"
	"net/http"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMaintenancePayload = pkg.NewDomainErrorSimple("INVALID_MAINTENANCE_INPUT", "Invalid maintenance payload", http.StatusBadRequest)

// MaintenanceHandler handles HTTP requests for maintenance orders: CRUD at
// the edges, lifecycle transitions and the reminder schedule in the middle.

type MaintenanceHandler struct {
	usecase usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(uc usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

func (h *MaintenanceHandler) Create(c *gin.Context) {
	var payload request.MaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ResolveCreate()
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaintenance(order))
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("query"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceList(items))
}

func (h *MaintenanceHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenance(order))
}

func (h *MaintenanceHandler) Update(c *gin.Context) {
	var payload request.MaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ResolveUpdate()
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenance(order))
}

func (h *MaintenanceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Complete marks an order delivered: OPEN -> COMPLETED, stamping closed_at
// and deriving the next maintenance date unless the payload overrides it.
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	var payload request.CompleteMaintenanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
			return
		}
	}

	deliveryDate, nextMaintenanceDate, err := payload.Resolve()
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), deliveryDate, nextMaintenanceDate)
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenance(order))
}

func (h *MaintenanceHandler) Cancel(c *gin.Context) {
	order, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenance(order))
}

// AdvanceReminder moves the follow-up schedule one step forward; the stored
// step is authoritative, so the request carries no body.
func (h *MaintenanceHandler) AdvanceReminder(c *gin.Context) {
	order, err := h.usecase.AdvanceReminder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenance(order))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidValue):
		return pkg.NewDomainErrorSimple("INVALID_VALUE", "Value must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, request.ErrNegativeCost):
		return pkg.NewDomainErrorSimple("NEGATIVE_COST", "Cost values cannot be negative", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must be ISO-8601", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	}
}

func mapMaintenanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaintenanceID),
		errors.Is(err, usecase.ErrInvalidMaintenanceInput),
		errors.Is(err, usecase.ErrInvalidMaintenanceValue),
		errors.Is(err, usecase.ErrNegativeCostEntry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaintenanceNotFound):
		return pkg.NewDomainErrorSimple("MAINTENANCE_NOT_FOUND", "Maintenance order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderTerminal):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_CLOSED", "Maintenance order is already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransitionConflict):
		return pkg.NewDomainErrorSimple("TRANSITION_CONFLICT", "Order status changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
