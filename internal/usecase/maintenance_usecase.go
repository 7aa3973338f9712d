package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMaintenanceNotFound     = errors.New("maintenance order not found")
	ErrInvalidMaintenanceID    = errors.New("invalid maintenance order id")
	ErrInvalidMaintenanceInput = errors.New("invalid maintenance order input")
	ErrInvalidMaintenanceValue = errors.New("invalid maintenance order value")
	ErrNegativeCostEntry       = errors.New("cost entry value cannot be negative")
	ErrOrderTerminal           = errors.New("maintenance order is already closed")
	ErrTransitionConflict      = errors.New("concurrent status transition")
)

// CreateMaintenanceCommand is the fully-typed, pre-validated input for
// opening an order. Handlers validate shape and presence before building it.

type CreateMaintenanceCommand struct {
	ClientID     string
	Equipment    *string
	ServiceTitle string
	Description  string
	Value        decimal.Decimal
	InternalCost *decimal.Decimal
	Costs        []entities.CostEntry
	StartDate    *time.Time
	DeliveryDate *time.Time
}

// UpdateMaintenanceCommand is the full-record edit payload. Edits are
// permitted in any state, including terminal ones; only the dedicated
// transition operations change status.

type UpdateMaintenanceCommand struct {
	ClientID            string
	Equipment           *string
	ServiceTitle        string
	Description         string
	Value               decimal.Decimal
	InternalCost        *decimal.Decimal
	Costs               []entities.CostEntry
	StartDate           *time.Time
	DeliveryDate        *time.Time
	NextMaintenanceDate *time.Time
}

// MaintenanceWithClient pairs an order with the client it belongs to, for
// listing/search views.

type MaintenanceWithClient struct {
	entities.MaintenanceOrder
	Client entities.Client `json:"client"`
}

// IMaintenanceUseCase exposes the maintenance order lifecycle:
//   - open/edit/delete orders
//   - Complete: OPEN -> COMPLETED, stamping closed_at and deriving the
//     next maintenance date from the delivery date unless overridden
//   - Cancel: OPEN -> CANCELLED
//   - AdvanceReminder: move the follow-up schedule one step forward

type IMaintenanceUseCase interface {
	Create(ctx context.Context, cmd CreateMaintenanceCommand) (entities.MaintenanceOrder, error)
	Update(ctx context.Context, id string, cmd UpdateMaintenanceCommand) (entities.MaintenanceOrder, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceOrder, error)
	List(ctx context.Context, query string) ([]MaintenanceWithClient, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, deliveryDate, nextMaintenanceDate *time.Time) (entities.MaintenanceOrder, error)
	Cancel(ctx context.Context, id string) (entities.MaintenanceOrder, error)
	AdvanceReminder(ctx context.Context, id string) (entities.MaintenanceOrder, error)
}

type MaintenanceUseCase struct {
	repo       interfaces.IMaintenanceOrderRepository
	clientRepo interfaces.IClientRepository
	now        func() time.Time
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(repo interfaces.IMaintenanceOrderRepository, clientRepo interfaces.IClientRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, clientRepo: clientRepo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *MaintenanceUseCase) Create(ctx context.Context, cmd CreateMaintenanceCommand) (entities.MaintenanceOrder, error) {
	cmd.ClientID = strings.TrimSpace(cmd.ClientID)
	cmd.ServiceTitle = strings.TrimSpace(cmd.ServiceTitle)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if cmd.ClientID == "" || cmd.ServiceTitle == "" || cmd.Description == "" {
		return entities.MaintenanceOrder{}, ErrInvalidMaintenanceInput
	}
	if err := validateMoney(cmd.Value, cmd.InternalCost, cmd.Costs); err != nil {
		return entities.MaintenanceOrder{}, err
	}

	client, err := u.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if client.ID == "" {
		return entities.MaintenanceOrder{}, ErrClientNotFound
	}

	now := u.now()
	step := entities.ReminderStepM4
	reminderAt := entities.AddMonthsClamped(now, 4)
	o := entities.MaintenanceOrder{
		ID:               uuid.NewString(),
		ClientID:         cmd.ClientID,
		Equipment:        cmd.Equipment,
		ServiceTitle:     cmd.ServiceTitle,
		Description:      cmd.Description,
		Value:            cmd.Value,
		InternalCost:     cmd.InternalCost,
		Costs:            cmd.Costs,
		Status:           entities.MaintenanceStatusOpen,
		OpenedAt:         now,
		StartDate:        cmd.StartDate,
		DeliveryDate:     cmd.DeliveryDate,
		NextReminderAt:   &reminderAt,
		NextReminderStep: &step,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, o)
}

func (u *MaintenanceUseCase) Update(ctx context.Context, id string, cmd UpdateMaintenanceCommand) (entities.MaintenanceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceOrder{}, ErrInvalidMaintenanceID
	}
	cmd.ClientID = strings.TrimSpace(cmd.ClientID)
	cmd.ServiceTitle = strings.TrimSpace(cmd.ServiceTitle)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if cmd.ClientID == "" || cmd.ServiceTitle == "" || cmd.Description == "" {
		return entities.MaintenanceOrder{}, ErrInvalidMaintenanceInput
	}
	if err := validateMoney(cmd.Value, cmd.InternalCost, cmd.Costs); err != nil {
		return entities.MaintenanceOrder{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if current.ID == "" {
		return entities.MaintenanceOrder{}, ErrMaintenanceNotFound
	}

	current.ClientID = cmd.ClientID
	current.Equipment = cmd.Equipment
	current.ServiceTitle = cmd.ServiceTitle
	current.Description = cmd.Description
	current.Value = cmd.Value
	current.InternalCost = cmd.InternalCost
	current.Costs = cmd.Costs
	current.StartDate = cmd.StartDate
	current.DeliveryDate = cmd.DeliveryDate
	current.NextMaintenanceDate = cmd.NextMaintenanceDate
	current.UpdatedAt = u.now()
	return u.repo.Update(ctx, current)
}

func (u *MaintenanceUseCase) GetByID(ctx context.Context, id string) (entities.MaintenanceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceOrder{}, ErrInvalidMaintenanceID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if o.ID == "" {
		return entities.MaintenanceOrder{}, ErrMaintenanceNotFound
	}
	return o, nil
}

// List returns orders joined with their clients, most recently opened first.
// A non-empty query filters by substring over service title, equipment,
// description and client name, case-insensitively.
func (u *MaintenanceUseCase) List(ctx context.Context, query string) ([]MaintenanceWithClient, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]MaintenanceWithClient, 0, len(orders))
	for _, o := range orders {
		client := byID[o.ClientID]
		if query != "" && !matchesQuery(o, client, query) {
			continue
		}
		result = append(result, MaintenanceWithClient{MaintenanceOrder: o, Client: client})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OpenedAt.After(result[j].OpenedAt)
	})
	return result, nil
}

func matchesQuery(o entities.MaintenanceOrder, c entities.Client, query string) bool {
	if strings.Contains(strings.ToLower(o.ServiceTitle), query) ||
		strings.Contains(strings.ToLower(o.Description), query) ||
		strings.Contains(strings.ToLower(c.Name), query) {
		return true
	}
	return o.Equipment != nil && strings.Contains(strings.ToLower(*o.Equipment), query)
}

func (u *MaintenanceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMaintenanceID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrMaintenanceNotFound
	}
	return nil
}

// Complete transitions OPEN -> COMPLETED. The delivery date defaults to the
// current time when neither the caller nor the stored order carries one.
// The next maintenance date is derived from the delivery date unless the
// caller supplies an explicit override, which is stored as-is.
func (u *MaintenanceUseCase) Complete(ctx context.Context, id string, deliveryDate, nextMaintenanceDate *time.Time) (entities.MaintenanceOrder, error) {
	current, err := u.loadOpen(ctx, id)
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}

	now := u.now()
	delivery := now
	switch {
	case deliveryDate != nil:
		delivery = deliveryDate.UTC()
	case current.DeliveryDate != nil:
		delivery = *current.DeliveryDate
	}

	next := entities.NextMaintenanceDate(delivery)
	if nextMaintenanceDate != nil {
		next = nextMaintenanceDate.UTC()
	}

	updated, err := u.repo.TransitionStatus(ctx, current.ID,
		entities.MaintenanceStatusOpen, entities.MaintenanceStatusCompleted,
		interfaces.StatusTransition{
			DeliveryDate:        &delivery,
			ClosedAt:            &now,
			NextMaintenanceDate: &next,
		})
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if updated.ID == "" {
		// The order moved out of OPEN between our read and the guarded write.
		return entities.MaintenanceOrder{}, ErrTransitionConflict
	}
	return updated, nil
}

// Cancel transitions OPEN -> CANCELLED. No additional fields are required.
func (u *MaintenanceUseCase) Cancel(ctx context.Context, id string) (entities.MaintenanceOrder, error) {
	current, err := u.loadOpen(ctx, id)
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}

	now := u.now()
	updated, err := u.repo.TransitionStatus(ctx, current.ID,
		entities.MaintenanceStatusOpen, entities.MaintenanceStatusCancelled,
		interfaces.StatusTransition{ClosedAt: &now})
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if updated.ID == "" {
		return entities.MaintenanceOrder{}, ErrTransitionConflict
	}
	return updated, nil
}

// AdvanceReminder moves the stored reminder step forward (M4 -> M6 -> none).
// The stored step is authoritative; the schedule never regresses. Advancing
// past the last step clears next_reminder_at.
func (u *MaintenanceUseCase) AdvanceReminder(ctx context.Context, id string) (entities.MaintenanceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceOrder{}, ErrInvalidMaintenanceID
	}
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if current.ID == "" {
		return entities.MaintenanceOrder{}, ErrMaintenanceNotFound
	}

	next := entities.AdvanceReminderStep(current.NextReminderStep)
	var nextAt *time.Time
	if next != nil {
		at := entities.AddMonthsClamped(u.now(), 6)
		nextAt = &at
	}

	updated, err := u.repo.UpdateReminder(ctx, current.ID, next, nextAt)
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if updated.ID == "" {
		return entities.MaintenanceOrder{}, ErrMaintenanceNotFound
	}
	return updated, nil
}

func (u *MaintenanceUseCase) loadOpen(ctx context.Context, id string) (entities.MaintenanceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceOrder{}, ErrInvalidMaintenanceID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if o.ID == "" {
		return entities.MaintenanceOrder{}, ErrMaintenanceNotFound
	}
	if o.Status.Terminal() {
		return entities.MaintenanceOrder{}, ErrOrderTerminal
	}
	return o, nil
}

func validateMoney(value decimal.Decimal, internalCost *decimal.Decimal, costs []entities.CostEntry) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidMaintenanceValue
	}
	if internalCost != nil && internalCost.IsNegative() {
		return ErrNegativeCostEntry
	}
	for _, c := range costs {
		if c.Value.IsNegative() {
			return ErrNegativeCostEntry
		}
	}
	return nil
}
