package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidReportPeriod      = errors.New("invalid report period")
	ErrInvalidReportGranularity = errors.New("invalid report granularity")
)

// ReportQuery is the fully-typed input for a financial report.
//
// Filtering semantics: only the COMPLETED status acts as a filter; any other
// value (including empty) includes every order regardless of state.

type ReportQuery struct {
	Start       time.Time
	End         time.Time
	Granularity entities.Granularity
	Status      entities.MaintenanceStatus
}

// IReportUseCase exposes the financial rollups consumed by chart and
// dashboard views.

type IReportUseCase interface {
	FetchFinancialReport(ctx context.Context, q ReportQuery) ([]entities.ReportBucket, error)
	FetchMonthlySummary(ctx context.Context, year int, month time.Month) (entities.MonthlySummary, error)
}

type ReportUseCase struct {
	repo interfaces.IMaintenanceOrderRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IMaintenanceOrderRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// FetchFinancialReport buckets orders over the closed interval
// [q.Start, end-of-day(q.End)] by truncated reference date. Each order lands
// in exactly one bucket; buckets with no qualifying orders are omitted and
// the sequence is ordered ascending by date.
func (u *ReportUseCase) FetchFinancialReport(ctx context.Context, q ReportQuery) ([]entities.ReportBucket, error) {
	if !q.Granularity.Valid() {
		return nil, ErrInvalidReportGranularity
	}
	if q.End.Before(q.Start) {
		return nil, ErrInvalidReportPeriod
	}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildReport(orders, q), nil
}

func buildReport(orders []entities.MaintenanceOrder, q ReportQuery) []entities.ReportBucket {
	start := q.Start.UTC()
	end := endOfDay(q.End)
	onlyCompleted := q.Status == entities.MaintenanceStatusCompleted

	byPeriod := make(map[time.Time]*entities.ReportBucket)
	for _, o := range orders {
		if onlyCompleted && o.Status != entities.MaintenanceStatusCompleted {
			continue
		}
		ref := o.ReferenceDate().UTC()
		if ref.Before(start) || ref.After(end) {
			continue
		}

		period := q.Granularity.Truncate(ref)
		b, ok := byPeriod[period]
		if !ok {
			b = &entities.ReportBucket{Date: period, Revenue: decimal.Zero, Costs: decimal.Zero}
			byPeriod[period] = b
		}
		b.Revenue = b.Revenue.Add(o.Value)
		b.Costs = b.Costs.Add(o.EffectiveCost())
	}

	buckets := make([]entities.ReportBucket, 0, len(byPeriod))
	for _, b := range byPeriod {
		b.NetGain = b.Revenue.Sub(b.Costs)
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})
	return buckets
}

// FetchMonthlySummary rolls up one calendar month of COMPLETED orders.
//
// Canonical semantics (see DESIGN.md): the month window is anchored on the
// opening date, and costs use the unified model (itemized entries when
// present, legacy flat cost otherwise). A month with no completed orders
// yields an all-zero summary.
func (u *ReportUseCase) FetchMonthlySummary(ctx context.Context, year int, month time.Month) (entities.MonthlySummary, error) {
	if year <= 0 || month < time.January || month > time.December {
		return entities.MonthlySummary{}, ErrInvalidReportPeriod
	}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return entities.MonthlySummary{}, err
	}
	return summarizeMonth(orders, year, month), nil
}

func summarizeMonth(orders []entities.MaintenanceOrder, year int, month time.Month) entities.MonthlySummary {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := endOfDay(start.AddDate(0, 1, -1))

	summary := entities.MonthlySummary{
		TotalRevenue: decimal.Zero,
		TotalCosts:   decimal.Zero,
		NetGain:      decimal.Zero,
	}
	for _, o := range orders {
		if o.Status != entities.MaintenanceStatusCompleted {
			continue
		}
		opened := o.OpenedAt.UTC()
		if opened.Before(start) || opened.After(end) {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(o.Value)
		summary.TotalCosts = summary.TotalCosts.Add(o.EffectiveCost())
		summary.OrderCount++
	}
	summary.NetGain = summary.TotalRevenue.Sub(summary.TotalCosts)
	return summary
}

func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
