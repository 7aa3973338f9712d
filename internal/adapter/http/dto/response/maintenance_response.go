package response

import (
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/shopspring/decimal"
)

type CostEntryResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ClientRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MaintenanceResponse mirrors the persisted order. Monetary figures are
// rounded to 2 decimal places for display; dates are ISO-8601.
type MaintenanceResponse struct {
	ID                  string              `json:"id"`
	ClientID            string              `json:"client_id"`
	Client              *ClientRefResponse  `json:"client,omitempty"`
	Equipment           *string             `json:"equipment,omitempty"`
	ServiceTitle        string              `json:"service_title"`
	Description         string              `json:"description"`
	Value               float64             `json:"value"`
	InternalCost        *float64            `json:"internal_cost,omitempty"`
	Costs               []CostEntryResponse `json:"costs,omitempty"`
	TotalCost           float64             `json:"total_cost"`
	Status              string              `json:"status"`
	OpenedAt            time.Time           `json:"opened_at"`
	StartDate           *time.Time          `json:"start_date,omitempty"`
	DeliveryDate        *time.Time          `json:"delivery_date,omitempty"`
	ClosedAt            *time.Time          `json:"closed_at,omitempty"`
	NextMaintenanceDate *time.Time          `json:"next_maintenance_date,omitempty"`
	NextReminderAt      *time.Time          `json:"next_reminder_at,omitempty"`
	NextReminderStep    *string             `json:"next_reminder_step,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

func FromMaintenance(o entities.MaintenanceOrder) MaintenanceResponse {
	var costs []CostEntryResponse
	for _, c := range o.Costs {
		costs = append(costs, CostEntryResponse{Name: c.Name, Value: displayMoney(c.Value)})
	}
	var step *string
	if o.NextReminderStep != nil {
		s := string(*o.NextReminderStep)
		step = &s
	}
	var internalCost *float64
	if o.InternalCost != nil {
		v := displayMoney(*o.InternalCost)
		internalCost = &v
	}
	return MaintenanceResponse{
		ID:                  o.ID,
		ClientID:            o.ClientID,
		Equipment:           o.Equipment,
		ServiceTitle:        o.ServiceTitle,
		Description:         o.Description,
		Value:               displayMoney(o.Value),
		InternalCost:        internalCost,
		Costs:               costs,
		TotalCost:           displayMoney(o.EffectiveCost()),
		Status:              string(o.Status),
		OpenedAt:            o.OpenedAt,
		StartDate:           o.StartDate,
		DeliveryDate:        o.DeliveryDate,
		ClosedAt:            o.ClosedAt,
		NextMaintenanceDate: o.NextMaintenanceDate,
		NextReminderAt:      o.NextReminderAt,
		NextReminderStep:    step,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func FromMaintenanceWithClient(m usecase.MaintenanceWithClient) MaintenanceResponse {
	res := FromMaintenance(m.MaintenanceOrder)
	res.Client = &ClientRefResponse{ID: m.Client.ID, Name: m.Client.Name}
	return res
}

func FromMaintenanceList(items []usecase.MaintenanceWithClient) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMaintenanceWithClient(m))
	}
	return out
}

func displayMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
