package response

import (
	"encoding/json"
	"time"

	"forro_orcamento/internal/domain/entities"
)

type CheckoutResponse struct {
	PaymentID      string    `json:"payment_id"`
	BudgetID       string    `json:"budget_id"`
	Amount         string    `json:"amount" example:"1008.70"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status"`
	Date           time.Time `json:"date"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCheckout(c entities.Checkout) CheckoutResponse {
	res := CheckoutResponse{
		PaymentID:      c.PaymentID,
		BudgetID:       c.BudgetID,
		Amount:         c.Amount.StringFixed(2),
		Status:         string(c.Status),
		ProviderStatus: c.ProviderStatus,
		Date:           c.Date,
		MPPayloadRaw:   string(c.ProviderPayloadRaw),
	}
	if len(c.ProviderPayloadRaw) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(c.ProviderPayloadRaw, &parsed); err == nil {
			res.MPPayload = parsed
		}
	}
	return res
}

type AdviceResponse struct {
	Tips        []string `json:"tips"`
	EconomyNote string   `json:"economy_note"`
	Source      string   `json:"source" example:"model"`
}

func FromAdvice(a entities.Advice) AdviceResponse {
	tips := a.Tips
	if tips == nil {
		tips = []string{}
	}
	return AdviceResponse{Tips: tips, EconomyNote: a.EconomyNote, Source: a.Source}
}
