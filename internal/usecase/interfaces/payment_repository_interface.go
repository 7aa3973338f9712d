package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByMaintenanceID(ctx context.Context, maintenanceID string) ([]entities.Payment, error)
}
