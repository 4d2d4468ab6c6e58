package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "forro_orcamento/internal/adapter/http/dto/request"
	response "forro_orcamento/internal/adapter/http/dto/response"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/usecase"
	"forro_orcamento/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=../../../usecase/checkout_usecase.go -destination=mocks/checkout_usecase_mock.go -package=mocks

// CheckoutHandler pays for a budget through Mercado Pago.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, logger: logging.OrNop(logger).Named("http.checkout")}
}

// Checkout godoc
// @Summary      Pay for a budget
// @Description  The budget is recomputed server side; transaction_amount in mp_payload is always overridden.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Room, main product and Mercado Pago payment body"
// @Success      200   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /budgets/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	payload, mpPayload, err := readCheckoutRequest(c)
	if err != nil {
		h.logger.Info("invalid checkout body", zap.Error(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	created, err := h.usecase.Checkout(c.Request.Context(), payload.Dimensions(), payload.ResolveProductID(), payload.Options(), mpPayload)
	if err != nil {
		h.logger.Warn("checkout failed", zap.String("product_id", payload.ResolveProductID()), zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("checkout success",
		zap.String("budget_id", created.BudgetID),
		zap.String("payment_id", created.PaymentID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromCheckout(created))
}

// readCheckoutRequest returns a nil payment body when mp_payload is absent
// or null; the use case decides whether that is acceptable.
func readCheckoutRequest(c *gin.Context) (request.CheckoutRequest, json.RawMessage, error) {
	var payload request.CheckoutRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, nil, err
	}
	if !json.Valid(raw) {
		return payload, nil, errors.New("request body is not valid json")
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, nil, err
	}

	mp := strings.TrimSpace(string(payload.MPPayload))
	if mp == "" || mp == "null" {
		return payload, nil, nil
	}
	return payload, payload.MPPayload, nil
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return mapBudgetError(err)
	}
}
