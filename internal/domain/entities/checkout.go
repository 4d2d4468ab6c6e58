package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the provider outcome of a checkout.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Checkout is the result of paying for a freshly computed budget.
//
// Nothing is stored: the provider response is returned to the caller for
// traceability and the budget is recomputed server side on every call.
type Checkout struct {
	PaymentID      string          `json:"payment_id"`
	BudgetID       string          `json:"budget_id"`
	Amount         decimal.Decimal `json:"amount"`
	Status         PaymentStatus   `json:"status"`
	ProviderStatus string          `json:"provider_status"`
	Date           time.Time       `json:"date"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
