package response

import (
	"encoding/json"
	"time"

	"oficina_os/internal/domain/entities"
)

type PaymentResponse struct {
	ID              string                 `json:"id"`
	MaintenanceID   string                 `json:"maintenance_id"`
	Date            time.Time              `json:"date"`
	Status          string                 `json:"status"`
	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
	ProviderRaw     json.RawMessage        `json:"provider_payload_raw,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		MaintenanceID:   p.MaintenanceID,
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayload,
		ProviderRaw:     p.ProviderPayloadRaw,
	}
}
