package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ICheckoutUseCase pays for a budget. The amount always comes from a
// server side recomputation, never from the client payload.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, dims entities.RoomDimensions, productID string, opts entities.EstimateOptions, payload json.RawMessage) (entities.Checkout, error)
}

type CheckoutUseCase struct {
	budgets  IBudgetUseCase
	gateway  interfaces.IPaymentGateway
	mockMode bool
	logger   *zap.Logger
	now      func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(budgets IBudgetUseCase, gateway interfaces.IPaymentGateway, mockMode bool, logger *zap.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		budgets:  budgets,
		gateway:  gateway,
		mockMode: mockMode,
		logger:   logging.OrNop(logger).Named("checkout"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, dims entities.RoomDimensions, productID string, opts entities.EstimateOptions, payload json.RawMessage) (entities.Checkout, error) {
	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return entities.Checkout{}, ErrInvalidPaymentPayload
	}
	if !u.mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.logger.Info("missing payment_method_id")
			return entities.Checkout{}, ErrInvalidPaymentPayload
		}
		if !hasPayer(reqMap) {
			u.logger.Info("missing or invalid payer")
			return entities.Checkout{}, ErrInvalidPaymentPayload
		}
	}
	if u.gateway == nil {
		return entities.Checkout{}, ErrPaymentGatewayNotConfigured
	}

	budget, err := u.budgets.Estimate(ctx, dims, productID, opts)
	if err != nil {
		return entities.Checkout{}, err
	}
	amount := budget.TotalProjectCost.Round(2)

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = budget.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento forro %s", budget.ID)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Checkout{}, err
	}

	u.logger.Info("calling payment gateway", zap.String("budget_id", budget.ID), zap.String("amount", amount.StringFixed(2)))
	paymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.logger.Warn("payment gateway failed", zap.String("budget_id", budget.ID), zap.Error(err))
		return entities.Checkout{}, classifyGatewayError(err)
	}
	u.logger.Info("payment gateway success",
		zap.String("budget_id", budget.ID),
		zap.String("payment_id", paymentID),
		zap.String("provider_status", providerStatus))

	return entities.Checkout{
		PaymentID:          paymentID,
		BudgetID:           budget.ID,
		Amount:             amount,
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderStatus:     providerStatus,
		Date:               u.now(),
		ProviderPayloadRaw: providerResp,
	}, nil
}

func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	if hasNonEmptyString(payer, "email") {
		return true
	}
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}
