package request

import (
	"errors"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidValue     = errors.New("value must be greater than zero")
	ErrNegativeCost     = errors.New("cost values cannot be negative")
	ErrInvalidDate      = errors.New("invalid date")
	ErrMissingReference = errors.New("missing required field")
)

type CostEntryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Value float64 `json:"value"`
}

// MaintenanceRequest is the validated payload for creating or fully editing
// a maintenance order. Dates cross the boundary as ISO-8601 strings; money
// as decimal numbers. Validation happens here, before any core function
// runs: negative costs and non-positive values are rejected, not clamped.
type MaintenanceRequest struct {
	ClientID            string             `json:"client_id" binding:"required"`
	Equipment           string             `json:"equipment"`
	ServiceTitle        string             `json:"service_title" binding:"required"`
	Description         string             `json:"description" binding:"required"`
	Value               float64            `json:"value" binding:"required"`
	InternalCost        *float64           `json:"internal_cost"`
	Costs               []CostEntryRequest `json:"costs"`
	StartDate           string             `json:"start_date"`
	DeliveryDate        string             `json:"delivery_date"`
	NextMaintenanceDate string             `json:"next_maintenance_date"`
}

func (r MaintenanceRequest) ResolveCreate() (usecase.CreateMaintenanceCommand, error) {
	base, err := r.resolveCommon()
	if err != nil {
		return usecase.CreateMaintenanceCommand{}, err
	}
	return usecase.CreateMaintenanceCommand{
		ClientID:     base.ClientID,
		Equipment:    base.Equipment,
		ServiceTitle: base.ServiceTitle,
		Description:  base.Description,
		Value:        base.Value,
		InternalCost: base.InternalCost,
		Costs:        base.Costs,
		StartDate:    base.StartDate,
		DeliveryDate: base.DeliveryDate,
	}, nil
}

func (r MaintenanceRequest) ResolveUpdate() (usecase.UpdateMaintenanceCommand, error) {
	base, err := r.resolveCommon()
	if err != nil {
		return usecase.UpdateMaintenanceCommand{}, err
	}
	return base, nil
}

func (r MaintenanceRequest) resolveCommon() (usecase.UpdateMaintenanceCommand, error) {
	if strings.TrimSpace(r.ClientID) == "" ||
		strings.TrimSpace(r.ServiceTitle) == "" ||
		strings.TrimSpace(r.Description) == "" {
		return usecase.UpdateMaintenanceCommand{}, ErrMissingReference
	}
	if r.Value <= 0 {
		return usecase.UpdateMaintenanceCommand{}, ErrInvalidValue
	}

	var internalCost *decimal.Decimal
	if r.InternalCost != nil {
		if *r.InternalCost < 0 {
			return usecase.UpdateMaintenanceCommand{}, ErrNegativeCost
		}
		d := decimal.NewFromFloat(*r.InternalCost)
		internalCost = &d
	}

	costs := make([]entities.CostEntry, 0, len(r.Costs))
	for _, c := range r.Costs {
		if c.Value < 0 {
			return usecase.UpdateMaintenanceCommand{}, ErrNegativeCost
		}
		costs = append(costs, entities.CostEntry{
			Name:  strings.TrimSpace(c.Name),
			Value: decimal.NewFromFloat(c.Value),
		})
	}

	startDate, err := resolveOptionalDate(r.StartDate)
	if err != nil {
		return usecase.UpdateMaintenanceCommand{}, err
	}
	deliveryDate, err := resolveOptionalDate(r.DeliveryDate)
	if err != nil {
		return usecase.UpdateMaintenanceCommand{}, err
	}
	nextMaintenance, err := resolveOptionalDate(r.NextMaintenanceDate)
	if err != nil {
		return usecase.UpdateMaintenanceCommand{}, err
	}

	var equipment *string
	if e := strings.TrimSpace(r.Equipment); e != "" {
		equipment = &e
	}

	return usecase.UpdateMaintenanceCommand{
		ClientID:            strings.TrimSpace(r.ClientID),
		Equipment:           equipment,
		ServiceTitle:        strings.TrimSpace(r.ServiceTitle),
		Description:         strings.TrimSpace(r.Description),
		Value:               decimal.NewFromFloat(r.Value),
		InternalCost:        internalCost,
		Costs:               costs,
		StartDate:           startDate,
		DeliveryDate:        deliveryDate,
		NextMaintenanceDate: nextMaintenance,
	}, nil
}

// CompleteMaintenanceRequest carries the optional completion fields: a
// delivery date (defaults to "now" server-side) and an explicit next
// maintenance date that suppresses derivation when present.
type CompleteMaintenanceRequest struct {
	DeliveryDate        string `json:"delivery_date"`
	NextMaintenanceDate string `json:"next_maintenance_date"`
}

func (r CompleteMaintenanceRequest) Resolve() (deliveryDate, nextMaintenanceDate *time.Time, err error) {
	deliveryDate, err = resolveOptionalDate(r.DeliveryDate)
	if err != nil {
		return nil, nil, err
	}
	nextMaintenanceDate, err = resolveOptionalDate(r.NextMaintenanceDate)
	if err != nil {
		return nil, nil, err
	}
	return deliveryDate, nextMaintenanceDate, nil
}

// resolveOptionalDate accepts an ISO-8601 calendar date or date-time.
// Empty input resolves to nil.
func resolveOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ErrInvalidDate
}
