package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceStatus represents the lifecycle of a maintenance order (OS).
//
// Domain notes:
//   - OPEN is the only non-terminal state.
//   - COMPLETED and CANCELLED are terminal; no transition leaves them.
//   - Completing an order requires a delivery date (defaulted to "now" when
//     the caller omits it) and stamps closed_at.

type MaintenanceStatus string

const (
	MaintenanceStatusOpen      MaintenanceStatus = "OPEN"
	MaintenanceStatusCompleted MaintenanceStatus = "COMPLETED"
	MaintenanceStatusCancelled MaintenanceStatus = "CANCELLED"
)

// Terminal reports whether no further status transition is allowed.
func (s MaintenanceStatus) Terminal() bool {
	return s == MaintenanceStatusCompleted || s == MaintenanceStatusCancelled
}

// ReminderStep is the staged follow-up schedule after a completed service:
// a 4-month contact, then a 6-month contact, then nothing.

type ReminderStep string

const (
	ReminderStepM4 ReminderStep = "M4"
	ReminderStepM6 ReminderStep = "M6"
)

// AdvanceReminderStep moves the reminder schedule strictly forward:
// M4 -> M6 -> nil. It is total: nil and any unrecognized step map to nil,
// so a reminder chain can never regress or loop.
func AdvanceReminderStep(current *ReminderStep) *ReminderStep {
	if current == nil {
		return nil
	}
	if *current == ReminderStepM4 {
		next := ReminderStepM6
		return &next
	}
	return nil
}

// CostEntry is one named internal cost embedded in its order. Entries have
// no identity of their own and live and die with the order.

type CostEntry struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// TotalCosts sums a cost-entry sequence with exact decimal arithmetic.
// An empty sequence totals zero. Negative entries are rejected at the
// request boundary and never reach this sum.
func TotalCosts(entries []CostEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Value)
	}
	return total
}

// MaintenanceOrder is a service order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Monetary representation:
//   - Value is the order revenue (always positive).
//   - Costs is the itemized internal-cost collection and is authoritative
//     when non-empty; InternalCost is the legacy flat figure kept for
//     records written before costs were itemized.

type MaintenanceOrder struct {
	ID                  string            `json:"id"`
	ClientID            string            `json:"client_id"`
	Equipment           *string           `json:"equipment,omitempty"`
	ServiceTitle        string            `json:"service_title"`
	Description         string            `json:"description"`
	Value               decimal.Decimal   `json:"value"`
	InternalCost        *decimal.Decimal  `json:"internal_cost,omitempty"`
	Costs               []CostEntry       `json:"costs,omitempty"`
	Status              MaintenanceStatus `json:"status"`
	OpenedAt            time.Time         `json:"opened_at"`
	StartDate           *time.Time        `json:"start_date,omitempty"`
	DeliveryDate        *time.Time        `json:"delivery_date,omitempty"`
	ClosedAt            *time.Time        `json:"closed_at,omitempty"`
	NextMaintenanceDate *time.Time        `json:"next_maintenance_date,omitempty"`
	NextReminderAt      *time.Time        `json:"next_reminder_at,omitempty"`
	NextReminderStep    *ReminderStep     `json:"next_reminder_step,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// EffectiveCost is the unified internal-cost figure: the itemized collection
// when present, else the legacy flat cost, else zero.
func (o MaintenanceOrder) EffectiveCost() decimal.Decimal {
	if len(o.Costs) > 0 {
		return TotalCosts(o.Costs)
	}
	if o.InternalCost != nil {
		return *o.InternalCost
	}
	return decimal.Zero
}

// ReferenceDate places the order on the financial timeline: delivery date
// when set, otherwise the opening date.
func (o MaintenanceOrder) ReferenceDate() time.Time {
	if o.DeliveryDate != nil {
		return *o.DeliveryDate
	}
	return o.OpenedAt
}

// NextMaintenanceDate derives the default follow-up maintenance date from a
// delivery: exactly 4 calendar months later, clamped to the last valid day
// of the target month (Jan 31 -> May 31, Oct 31 -> Feb 28/29). Callers that
// supply an explicit date keep it; this default is never recomputed over an
// override.
func NextMaintenanceDate(delivery time.Time) time.Time {
	return AddMonthsClamped(delivery, 4)
}

// AddMonthsClamped adds calendar months to the month component, clamping the
// day to the target month's length instead of letting the date normalize
// into the following month.
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	// Day 0 of month+1 is the last day of the target month.
	last := time.Date(y, m+time.Month(months)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	h, mi, s := t.Clock()
	return time.Date(y, m+time.Month(months), d, h, mi, s, t.Nanosecond(), t.Location())
}
