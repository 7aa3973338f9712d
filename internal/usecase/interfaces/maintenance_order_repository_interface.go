package interfaces

import (
	"context"
	"time"

	"oficina_os/internal/domain/entities"
)

// StatusTransition carries the fields stamped alongside a status change.
// Pointers left nil are not written.

type StatusTransition struct {
	DeliveryDate        *time.Time
	ClosedAt            *time.Time
	NextMaintenanceDate *time.Time
}

// IMaintenanceOrderRepository abstracts DynamoDB persistence for
// MaintenanceOrder.
//
// The service must be able to:
//   - create and fully edit orders
//   - transition status atomically per order (TransitionStatus guards the
//     write with a condition on the expected current status, so two
//     concurrent completion requests cannot interleave a read-modify-write)
//   - advance the reminder schedule
//   - fetch everything for in-memory financial aggregation
//
// Zero-value returns follow the table convention: an empty ID means the
// item was not found or the transition condition did not hold.

type IMaintenanceOrderRepository interface {
	Create(ctx context.Context, o entities.MaintenanceOrder) (entities.MaintenanceOrder, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceOrder, error)
	Update(ctx context.Context, o entities.MaintenanceOrder) (entities.MaintenanceOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.MaintenanceOrder, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.MaintenanceStatus, set StatusTransition) (entities.MaintenanceOrder, error)
	UpdateReminder(ctx context.Context, id string, step *entities.ReminderStep, nextReminderAt *time.Time) (entities.MaintenanceOrder, error)
}
