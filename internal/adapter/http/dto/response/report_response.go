package response

import "oficina_os/internal/domain/entities"

// ReportBucketResponse is one financial chart row. The date is the
// truncated period start as a calendar date.
type ReportBucketResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	NetGain float64 `json:"net_gain"`
}

func FromReportBuckets(buckets []entities.ReportBucket) []ReportBucketResponse {
	out := make([]ReportBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, ReportBucketResponse{
			Date:    b.Date.Format("2006-01-02"),
			Revenue: displayMoney(b.Revenue),
			Costs:   displayMoney(b.Costs),
			NetGain: displayMoney(b.NetGain),
		})
	}
	return out
}

type MonthlySummaryResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	NetGain      float64 `json:"net_gain"`
	OrderCount   int     `json:"order_count"`
}

func FromMonthlySummary(s entities.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		TotalRevenue: displayMoney(s.TotalRevenue),
		TotalCosts:   displayMoney(s.TotalCosts),
		NetGain:      displayMoney(s.NetGain),
		OrderCount:   s.OrderCount,
	}
}
