package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StructureMaterial selects the hidden support grid the slats are fixed to.
type StructureMaterial string

const (
	StructureMetal StructureMaterial = "metalica"
	StructureWood  StructureMaterial = "madeira"
)

func (s StructureMaterial) Valid() bool {
	return s == StructureMetal || s == StructureWood
}

// ParseStructureMaterial maps free text (labels, English names, accented
// spellings) to a structure material. Empty input stays empty and unknown
// values are passed through lowercased so validation can reject them.
func ParseStructureMaterial(s string) StructureMaterial {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return ""
	case "metal", "metalica", "metálica", "metalon":
		return StructureMetal
	case "madeira", "wood", "sarrafo":
		return StructureWood
	default:
		return StructureMaterial(v)
	}
}

// Label is the human readable name used in notes and justifications.
func (s StructureMaterial) Label() string {
	switch s {
	case StructureWood:
		return "Madeira"
	default:
		return "Metálica"
	}
}

// RoomDimensions are the room's width and length in metres.
type RoomDimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

func (d RoomDimensions) Area() float64 { return d.Width * d.Length }

func (d RoomDimensions) Perimeter() float64 { return 2 * (d.Width + d.Length) }

// LineItem is one row of a budget. Product is a copy of the catalog entry.
type LineItem struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
	Note     string          `json:"note,omitempty"`
}

// BudgetResult is the itemised estimate (orçamento) for one room.
//
// It is built fresh on every estimation and never persisted. Totals keep
// full decimal precision; rounding to cents happens at presentation.
type BudgetResult struct {
	ID                string            `json:"id"`
	MainProducts      []LineItem        `json:"main_products"`
	FinishingProducts []LineItem        `json:"finishing_products"`
	StructureProducts []LineItem        `json:"structure_products"`
	AccessoryProducts []LineItem        `json:"accessory_products"`
	TotalMaterialCost decimal.Decimal   `json:"total_material_cost"`
	LaborCost         decimal.Decimal   `json:"labor_cost"`
	TotalProjectCost  decimal.Decimal   `json:"total_project_cost"`
	Dimensions        RoomDimensions    `json:"dimensions"`
	WastePercent      float64           `json:"waste_percent"`
	StructureMaterial StructureMaterial `json:"structure_material"`
	Justification     string            `json:"justification"`
	Layout            CutLayout         `json:"cut_layout"`
}

// CutLayout describes how the main covering strips are laid across the
// room: Slats strips side by side across the width, each one running the
// full length and made of PiecesPerSlat cuts of at most StripLength.
type CutLayout struct {
	Slats         int     `json:"slats"`
	StripWidth    float64 `json:"strip_width"`
	StripLength   float64 `json:"strip_length"`
	LastSlatWidth float64 `json:"last_slat_width"`
	PiecesPerSlat int     `json:"pieces_per_slat"`
	LastPiece     float64 `json:"last_piece"`
}

// Items returns every line item in presentation order.
func (b BudgetResult) Items() []LineItem {
	out := make([]LineItem, 0, len(b.MainProducts)+len(b.FinishingProducts)+len(b.StructureProducts)+len(b.AccessoryProducts))
	out = append(out, b.MainProducts...)
	out = append(out, b.FinishingProducts...)
	out = append(out, b.StructureProducts...)
	out = append(out, b.AccessoryProducts...)
	return out
}

// EstimateOptions tunes a single estimation. A nil WasteMargin means the
// default margin; an empty Structure means metal framing.
type EstimateOptions struct {
	WasteMargin *float64          `json:"waste_margin,omitempty"`
	Structure   StructureMaterial `json:"structure,omitempty"`
}

// BudgetRequest is one room to estimate, as read from a batch import.
type BudgetRequest struct {
	Row        int             `json:"row"`
	Dimensions RoomDimensions  `json:"dimensions"`
	ProductID  string          `json:"product_id"`
	Options    EstimateOptions `json:"options"`
}

// BatchItem pairs a batch row with its budget or its error message.
type BatchItem struct {
	Row       int           `json:"row"`
	ProductID string        `json:"product_id"`
	Budget    *BudgetResult `json:"budget,omitempty"`
	Error     string        `json:"error,omitempty"`
}
