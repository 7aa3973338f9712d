package request

import (
	"errors"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
)

var (
	ErrInvalidGranularity = errors.New("granularity must be day, month or year")
	ErrInvalidPeriod      = errors.New("end_date must not precede start_date")
	ErrInvalidMonth       = errors.New("month must be formatted as YYYY-MM")
)

// FinancialReportRequest selects the closed interval, truncation unit and
// optional status filter for a financial report. Only the COMPLETED status
// restricts the result; any other value includes all orders.
type FinancialReportRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Granularity string `json:"granularity" binding:"required"`
	Status      string `json:"status"`
}

func (r FinancialReportRequest) Resolve() (usecase.ReportQuery, error) {
	start, err := resolveOptionalDate(r.StartDate)
	if err != nil || start == nil {
		return usecase.ReportQuery{}, ErrInvalidDate
	}
	end, err := resolveOptionalDate(r.EndDate)
	if err != nil || end == nil {
		return usecase.ReportQuery{}, ErrInvalidDate
	}
	if end.Before(*start) {
		return usecase.ReportQuery{}, ErrInvalidPeriod
	}

	granularity := entities.Granularity(strings.ToLower(strings.TrimSpace(r.Granularity)))
	if !granularity.Valid() {
		return usecase.ReportQuery{}, ErrInvalidGranularity
	}

	return usecase.ReportQuery{
		Start:       *start,
		End:         *end,
		Granularity: granularity,
		Status:      entities.MaintenanceStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}, nil
}

// ParseMonth resolves the YYYY-MM query parameter used by the monthly
// summary endpoint.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, ErrInvalidMonth
	}
	return t.Year(), t.Month(), nil
}
