package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func marchOrders() []entities.MaintenanceOrder {
	deliveryA := day(2024, time.March, 5)
	return []entities.MaintenanceOrder{
		{
			ID: "os-a", Status: entities.MaintenanceStatusCompleted,
			Value:        decimal.NewFromInt(100),
			OpenedAt:     day(2024, time.March, 1),
			DeliveryDate: &deliveryA,
		},
		{
			ID: "os-b", Status: entities.MaintenanceStatusOpen,
			Value:    decimal.NewFromInt(200),
			OpenedAt: day(2024, time.March, 20),
		},
	}
}

func TestReportUseCase_FetchFinancialReport(t *testing.T) {
	t.Run("invalid granularity", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		_, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
			Start: day(2024, time.March, 1), End: day(2024, time.March, 31), Granularity: "week",
		})
		if !errors.Is(err, ErrInvalidReportGranularity) {
			t.Fatalf("expected ErrInvalidReportGranularity, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		_, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
			Start: day(2024, time.March, 31), End: day(2024, time.March, 1), Granularity: entities.GranularityDay,
		})
		if !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
			Start: day(2024, time.March, 1), End: day(2024, time.March, 31), Granularity: entities.GranularityMonth,
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("completed filter keeps only completed orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(marchOrders(), nil)

		buckets, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
			Start: day(2024, time.March, 1), End: day(2024, time.March, 31),
			Granularity: entities.GranularityMonth,
			Status:      entities.MaintenanceStatusCompleted,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(buckets) != 1 {
			t.Fatalf("expected one bucket, got %d", len(buckets))
		}
		b := buckets[0]
		if !b.Date.Equal(day(2024, time.March, 1)) {
			t.Fatalf("expected bucket at month start, got %v", b.Date)
		}
		if !b.Revenue.Equal(decimal.NewFromInt(100)) || !b.Costs.IsZero() || !b.NetGain.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("unexpected bucket: %+v", b)
		}
	})

	t.Run("any other status value includes everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(marchOrders(), nil).Times(2)

		for _, status := range []entities.MaintenanceStatus{"", "ALL"} {
			buckets, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
				Start: day(2024, time.March, 1), End: day(2024, time.March, 31),
				Granularity: entities.GranularityMonth,
				Status:      status,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(buckets) != 1 || !buckets[0].Revenue.Equal(decimal.NewFromInt(300)) {
				t.Fatalf("status %q: expected revenue 300, got %+v", status, buckets)
			}
		}
	})

	t.Run("net gain subtracts itemized costs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.MaintenanceOrder{
			{
				ID: "os-1", Status: entities.MaintenanceStatusCompleted,
				Value:    decimal.NewFromInt(100),
				OpenedAt: day(2024, time.March, 10),
				Costs: []entities.CostEntry{
					{Name: "peça", Value: decimal.NewFromInt(30)},
					{Name: "mão de obra", Value: decimal.NewFromInt(20)},
				},
			},
		}, nil)

		buckets, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
			Start: day(2024, time.March, 1), End: day(2024, time.March, 31),
			Granularity: entities.GranularityMonth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := buckets[0]
		if !b.Costs.Equal(decimal.NewFromInt(50)) || !b.NetGain.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("unexpected bucket: %+v", b)
		}
	})

	t.Run("closed interval includes both endpoints", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.MaintenanceOrder{
			{ID: "os-1", Value: decimal.NewFromInt(10), OpenedAt: day(2024, time.March, 1)},
			{ID: "os-2", Value: decimal.NewFromInt(20), OpenedAt: time.Date(2024, time.March, 31, 18, 45, 0, 0, time.UTC)},
			{ID: "os-3", Value: decimal.NewFromInt(40), OpenedAt: day(2024, time.April, 1)},
		}, nil)

		buckets, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
			Start: day(2024, time.March, 1), End: day(2024, time.March, 31),
			Granularity: entities.GranularityMonth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(buckets) != 1 || !buckets[0].Revenue.Equal(decimal.NewFromInt(30)) {
			t.Fatalf("expected only march orders (revenue 30), got %+v", buckets)
		}
	})

	t.Run("empty window yields empty sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(marchOrders(), nil)

		buckets, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
			Start: day(2030, time.January, 1), End: day(2030, time.December, 31),
			Granularity: entities.GranularityYear,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(buckets) != 0 {
			t.Fatalf("expected no buckets, got %+v", buckets)
		}
	})

	t.Run("day buckets are ascending and partition the orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		orders := []entities.MaintenanceOrder{
			{ID: "os-1", Value: decimal.NewFromInt(10), OpenedAt: day(2024, time.March, 20)},
			{ID: "os-2", Value: decimal.NewFromInt(20), OpenedAt: day(2024, time.March, 5)},
			{ID: "os-3", Value: decimal.NewFromInt(30), OpenedAt: day(2024, time.March, 5)},
		}
		repo.EXPECT().List(gomock.Any()).Return(orders, nil)

		buckets, err := uc.FetchFinancialReport(context.Background(), ReportQuery{
			Start: day(2024, time.March, 1), End: day(2024, time.March, 31),
			Granularity: entities.GranularityDay,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(buckets) != 2 {
			t.Fatalf("expected two buckets, got %d", len(buckets))
		}
		if !buckets[0].Date.Before(buckets[1].Date) {
			t.Fatalf("buckets must be ascending: %v, %v", buckets[0].Date, buckets[1].Date)
		}
		total := buckets[0].Revenue.Add(buckets[1].Revenue)
		if !total.Equal(decimal.NewFromInt(60)) {
			t.Fatalf("bucket revenues must sum to the order total, got %s", total)
		}
	})

	t.Run("coarser granularity never produces more buckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		orders := []entities.MaintenanceOrder{
			{ID: "os-1", Value: decimal.NewFromInt(10), OpenedAt: day(2024, time.March, 3)},
			{ID: "os-2", Value: decimal.NewFromInt(20), OpenedAt: day(2024, time.March, 12)},
			{ID: "os-3", Value: decimal.NewFromInt(30), OpenedAt: day(2024, time.March, 12)},
			{ID: "os-4", Value: decimal.NewFromInt(40), OpenedAt: day(2024, time.March, 28)},
		}
		repo.EXPECT().List(gomock.Any()).Return(orders, nil).Times(2)

		query := ReportQuery{Start: day(2024, time.March, 1), End: day(2024, time.March, 31)}

		query.Granularity = entities.GranularityDay
		dayBuckets, err := uc.FetchFinancialReport(context.Background(), query)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		query.Granularity = entities.GranularityMonth
		monthBuckets, err := uc.FetchFinancialReport(context.Background(), query)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(dayBuckets) != 3 || len(monthBuckets) != 1 {
			t.Fatalf("expected 3 day buckets and 1 month bucket, got %d and %d", len(dayBuckets), len(monthBuckets))
		}
		if len(monthBuckets) > len(dayBuckets) {
			t.Fatalf("month view has more buckets (%d) than day view (%d)", len(monthBuckets), len(dayBuckets))
		}
		dayTotal := decimal.Zero
		for _, b := range dayBuckets {
			dayTotal = dayTotal.Add(b.Revenue)
		}
		if !dayTotal.Equal(monthBuckets[0].Revenue) || !dayTotal.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("day revenue %s and month revenue %s must both equal 100", dayTotal, monthBuckets[0].Revenue)
		}
	})
}

func TestReportUseCase_FetchMonthlySummary(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		if _, err := uc.FetchMonthlySummary(context.Background(), 0, time.March); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
		if _, err := uc.FetchMonthlySummary(context.Background(), 2024, time.Month(13)); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
	})

	t.Run("completed orders only, anchored on opening date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		aprilDelivery := day(2024, time.April, 2)
		flat := decimal.NewFromInt(40)
		repo.EXPECT().List(gomock.Any()).Return([]entities.MaintenanceOrder{
			// Opened in March, delivered in April: counted in March.
			{ID: "os-1", Status: entities.MaintenanceStatusCompleted, Value: decimal.NewFromInt(100), OpenedAt: day(2024, time.March, 28), DeliveryDate: &aprilDelivery, InternalCost: &flat},
			{ID: "os-2", Status: entities.MaintenanceStatusCompleted, Value: decimal.NewFromInt(200), OpenedAt: day(2024, time.March, 10)},
			{ID: "os-3", Status: entities.MaintenanceStatusOpen, Value: decimal.NewFromInt(999), OpenedAt: day(2024, time.March, 15)},
			{ID: "os-4", Status: entities.MaintenanceStatusCompleted, Value: decimal.NewFromInt(500), OpenedAt: day(2024, time.February, 20)},
		}, nil)

		s, err := uc.FetchMonthlySummary(context.Background(), 2024, time.March)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.OrderCount != 2 {
			t.Fatalf("expected 2 orders, got %d", s.OrderCount)
		}
		if !s.TotalRevenue.Equal(decimal.NewFromInt(300)) {
			t.Fatalf("expected revenue 300, got %s", s.TotalRevenue)
		}
		if !s.TotalCosts.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("expected costs 40, got %s", s.TotalCosts)
		}
		if !s.NetGain.Equal(decimal.NewFromInt(260)) {
			t.Fatalf("expected net gain 260, got %s", s.NetGain)
		}
	})

	t.Run("month without completed orders is all zeros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(marchOrders(), nil)

		s, err := uc.FetchMonthlySummary(context.Background(), 2024, time.July)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.OrderCount != 0 || !s.TotalRevenue.IsZero() || !s.TotalCosts.IsZero() || !s.NetGain.IsZero() {
			t.Fatalf("expected zero summary, got %+v", s)
		}
	})
}
