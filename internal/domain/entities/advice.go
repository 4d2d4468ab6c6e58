package entities

// Advice is the optional installation guidance attached to a budget.
// Source tells whether it came from the model or from the canned fallback.
type Advice struct {
	Tips        []string `json:"tips"`
	EconomyNote string   `json:"economy_note"`
	Source      string   `json:"source"`
}

const (
	AdviceSourceModel    = "model"
	AdviceSourceFallback = "fallback"
)

// AdviceRequest is what the advisory service is asked about.
type AdviceRequest struct {
	Width         float64 `json:"width"`
	Length        float64 `json:"length"`
	MaterialLabel string  `json:"material_label"`
}
