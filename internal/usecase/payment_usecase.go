package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentOrderID      = errors.New("invalid maintenance_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment provider payload")
	ErrOrderNotCompleted          = errors.New("maintenance order not completed")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates "create and approve a payment" for a
// completed maintenance order. The stored order value is the source of
// truth for the charged amount, never the caller's payload.

type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, maintenanceID string, providerPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByMaintenanceID(ctx context.Context, maintenanceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IMaintenanceOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IMaintenanceOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, maintenanceID string, providerPayload json.RawMessage) (entities.Payment, error) {
	maintenanceID = strings.TrimSpace(maintenanceID)
	if maintenanceID == "" {
		return entities.Payment{}, ErrInvalidPaymentOrderID
	}
	mockMode := paymentMockEnabled()
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	order, err := u.orderRepo.GetByID(ctx, maintenanceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrMaintenanceNotFound
	}
	if !mockMode && order.Status != entities.MaintenanceStatusCompleted {
		return entities.Payment{}, ErrOrderNotCompleted
	}

	providerPayload, err = enrichProviderPayload(providerPayload, order, mockMode)
	if err != nil {
		return entities.Payment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID, providerResp, err = mockProviderResponse(providerPayload, order)
		if err != nil {
			return entities.Payment{}, err
		}
		providerStatus = "approved"
	} else {
		log.Info().Str("maintenance_id", maintenanceID).Msg("calling payment gateway")
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Error().Err(err).Str("maintenance_id", maintenanceID).Msg("payment gateway failed")
			return entities.Payment{}, classifyGatewayError(err)
		}
		log.Info().Str("maintenance_id", maintenanceID).Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).Msg("payment gateway responded")
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("maintenance_id", maintenanceID).Msg("provider response is not a json object")
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		MaintenanceID:      maintenanceID,
		Date:               time.Now().UTC(),
		Status:             mapProviderStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Info().Str("maintenance_id", maintenanceID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("payment recorded")
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByMaintenanceID(ctx context.Context, maintenanceID string) ([]entities.Payment, error) {
	maintenanceID = strings.TrimSpace(maintenanceID)
	if maintenanceID == "" {
		return nil, ErrInvalidPaymentOrderID
	}
	return u.repo.ListByMaintenanceID(ctx, maintenanceID)
}

// enrichProviderPayload links the provider request back to the order
// (external_reference) and forces the transaction amount to the order value
// stored in the database.
func enrichProviderPayload(payload json.RawMessage, order entities.MaintenanceOrder, mockMode bool) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, ErrInvalidPaymentPayload
	}
	if !mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidPaymentPayload
		}
		if !hasPayerEmail(req) {
			return nil, ErrInvalidPaymentPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = order.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("OS %s - %s", order.ID, order.ServiceTitle)
	}
	req["transaction_amount"] = order.Value.InexactFloat64()

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func mockProviderResponse(payload json.RawMessage, order entities.MaintenanceOrder) (string, json.RawMessage, error) {
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = order.ID
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	return id, b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerEmail(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email")
}

// mapProviderStatus folds Mercado Pago payment statuses into the three
// stored outcomes. Unknown or empty statuses stay PENDING rather than
// being assumed approved.
func mapProviderStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func paymentMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
