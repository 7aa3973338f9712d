package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the truncation unit used to bucket orders on the financial
// timeline.

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityMonth, GranularityYear:
		return true
	}
	return false
}

// Truncate reduces t to the start of its period in UTC: midnight for day,
// the first of the month for month, January 1st for year.
func (g Granularity) Truncate(t time.Time) time.Time {
	t = t.UTC()
	switch g {
	case GranularityYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// ReportBucket is one aggregation row: all qualifying orders whose reference
// date truncates to Date, with NetGain derived as Revenue minus Costs.

type ReportBucket struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Costs   decimal.Decimal `json:"costs"`
	NetGain decimal.Decimal `json:"net_gain"`
}

// MonthlySummary is the single-bucket dashboard rollup for one calendar
// month of completed orders.

type MonthlySummary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCosts   decimal.Decimal `json:"total_costs"`
	NetGain      decimal.Decimal `json:"net_gain"`
	OrderCount   int             `json:"order_count"`
}
