package request

import (
	"encoding/json"
	"strings"

	"forro_orcamento/internal/domain/entities"
)

// BudgetRequest is the room and product selection of the quote form.
//
// Dimension and product checks are left to the use case so that every
// surface reports the same errors.
type BudgetRequest struct {
	Width       float64  `json:"width" example:"3"`
	Length      float64  `json:"length" example:"4"`
	ProductID   string   `json:"product_id" example:"62"`
	WasteMargin *float64 `json:"waste_margin,omitempty" example:"0.1"`
	Structure   string   `json:"structure,omitempty" example:"metalica"`
}

func (r BudgetRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

func (r BudgetRequest) Dimensions() entities.RoomDimensions {
	return entities.RoomDimensions{Width: r.Width, Length: r.Length}
}

// Options maps the free text structure field; unknown values are passed
// through and rejected by the use case.
func (r BudgetRequest) Options() entities.EstimateOptions {
	return entities.EstimateOptions{
		WasteMargin: r.WasteMargin,
		Structure:   ResolveStructure(r.Structure),
	}
}

func ResolveStructure(s string) entities.StructureMaterial {
	return entities.ParseStructureMaterial(s)
}

// CheckoutRequest is a budget request plus the Mercado Pago payment body.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type CheckoutRequest struct {
	BudgetRequest
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

// AdviceRequest asks for installation tips for a room.
type AdviceRequest struct {
	Width    float64 `json:"width" example:"3"`
	Length   float64 `json:"length" example:"4"`
	Material string  `json:"material" example:"PVC Liso"`
}

func (r AdviceRequest) Valid() bool {
	return r.Width > 0 && r.Length > 0
}
