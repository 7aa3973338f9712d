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

// ReportHandler serves the financial rollups: the bucketed report behind
// the chart view and the current-month summary cards.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) FinancialReport(c *gin.Context) {
	var payload request.FinancialReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	query, err := payload.Resolve()
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	buckets, err := h.usecase.FetchFinancialReport(c.Request.Context(), query)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReportBuckets(buckets))
}

func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	year, month, err := request.ParseMonth(c.Query("month"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.usecase.FetchMonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMonthlySummary(summary))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate),
		errors.Is(err, request.ErrInvalidGranularity),
		errors.Is(err, request.ErrInvalidPeriod),
		errors.Is(err, request.ErrInvalidMonth),
		errors.Is(err, usecase.ErrInvalidReportPeriod),
		errors.Is(err, usecase.ErrInvalidReportGranularity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
