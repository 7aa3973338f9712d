package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// In the current scope we only create/process and persist an approved
// payment. The type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusDenied   PaymentStatus = "DENIED"
)

// Payment is a payment recorded against a completed maintenance order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (maintenance_id-index): maintenance_id
//
// MercadoPago payload:
//   - ProviderPayloadRaw keeps the original provider body (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type Payment struct {
	ID            string        `json:"id"`
	MaintenanceID string        `json:"maintenance_id"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
