package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/infrastructure/catalog"
	mock_interfaces "forro_orcamento/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var checkoutRoom = entities.RoomDimensions{Width: 3, Length: 4}

const validPaymentPayload = `{"payment_method_id":"pix","payer":{"email":"cliente@example.com"}}`

func TestCheckoutUseCase_Validations(t *testing.T) {
	budgets := newTestBudgetUseCase(t, catalog.Products())

	cases := []struct {
		name    string
		payload string
	}{
		{name: "invalid json", payload: `{`},
		{name: "not an object", payload: `[1,2]`},
		{name: "missing payment method", payload: `{"payer":{"email":"a@b.c"}}`},
		{name: "blank payment method", payload: `{"payment_method_id":" ","payer":{"email":"a@b.c"}}`},
		{name: "missing payer", payload: `{"payment_method_id":"pix"}`},
		{name: "payer without email or id", payload: `{"payment_method_id":"pix","payer":{"name":"x"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewCheckoutUseCase(budgets, nil, false, nil)
			_, err := uc.Checkout(context.Background(), checkoutRoom, "62", entities.EstimateOptions{}, json.RawMessage(tc.payload))
			if !errors.Is(err, ErrInvalidPaymentPayload) {
				t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
			}
		})
	}

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(budgets, nil, false, nil)
		_, err := uc.Checkout(context.Background(), checkoutRoom, "62", entities.EstimateOptions{}, json.RawMessage(validPaymentPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("budget errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(budgets, gateway, false, nil)

		_, err := uc.Checkout(context.Background(), checkoutRoom, "999", entities.EstimateOptions{}, json.RawMessage(validPaymentPayload))
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	budgets := newTestBudgetUseCase(t, catalog.Products())
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	var sent map[string]any
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			require.NoError(t, json.Unmarshal(payload, &sent))
			return "mp-1", "approved", json.RawMessage(`{"id":1}`), nil
		})

	uc := NewCheckoutUseCase(budgets, gateway, false, nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	// Client supplied amounts are ignored.
	payload := `{"payment_method_id":"pix","payer":{"email":"cliente@example.com"},"transaction_amount":1,"description":"meu forro"}`
	got, err := uc.Checkout(context.Background(), checkoutRoom, "62", entities.EstimateOptions{}, json.RawMessage(payload))
	require.NoError(t, err)

	assert.Equal(t, "mp-1", got.PaymentID)
	assert.Equal(t, "budget-1", got.BudgetID)
	assert.Equal(t, "1008.70", got.Amount.StringFixed(2))
	assert.Equal(t, entities.PaymentStatusAprovado, got.Status)
	assert.Equal(t, "approved", got.ProviderStatus)
	assert.Equal(t, fixed, got.Date)
	assert.JSONEq(t, `{"id":1}`, string(got.ProviderPayloadRaw))

	assert.Equal(t, 1008.7, sent["transaction_amount"])
	assert.Equal(t, "budget-1", sent["external_reference"])
	assert.Equal(t, "meu forro", sent["description"])
}

func TestCheckoutUseCase_MockModeAcceptsEmptyPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	budgets := newTestBudgetUseCase(t, catalog.Products())
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mock-1", "in_process", nil, nil)

	uc := NewCheckoutUseCase(budgets, gateway, true, nil)
	got, err := uc.Checkout(context.Background(), checkoutRoom, "62", entities.EstimateOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPendente, got.Status)
}

func TestCheckoutUseCase_GatewayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"message":"Customer not found","status":404,"cause":[{"code":2002}]}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`{"message":"Invalid users involved","cause":[{"code":2034}]}`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized","status":401}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"error":"bad_request","status":400}`), want: ErrPaymentGatewayBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			uc := NewCheckoutUseCase(newTestBudgetUseCase(t, catalog.Products()), gateway, false, nil)
			_, err := uc.Checkout(context.Background(), checkoutRoom, "62", entities.EstimateOptions{}, json.RawMessage(validPaymentPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown error is returned as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boom := errors.New("boom")
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, boom)

		uc := NewCheckoutUseCase(newTestBudgetUseCase(t, catalog.Products()), gateway, false, nil)
		_, err := uc.Checkout(context.Background(), checkoutRoom, "62", entities.EstimateOptions{}, json.RawMessage(validPaymentPayload))
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestPaymentStatusFromProvider(t *testing.T) {
	assert.Equal(t, entities.PaymentStatusAprovado, paymentStatusFromProvider("APPROVED"))
	assert.Equal(t, entities.PaymentStatusNegado, paymentStatusFromProvider("rejected"))
	assert.Equal(t, entities.PaymentStatusPendente, paymentStatusFromProvider("in_process"))
	assert.Equal(t, entities.PaymentStatusPendente, paymentStatusFromProvider(""))
}
