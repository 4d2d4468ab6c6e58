package entities

import "github.com/shopspring/decimal"

// Category classifies catalog products. Values follow the store's own
// vocabulary (forro, arremate, acessório, estrutura).
type Category string

const (
	CategoryMainCovering Category = "Forro"
	CategoryTrim         Category = "Arremate"
	CategoryAccessory    Category = "Acessorio"
	CategoryStructure    Category = "Estrutura"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMainCovering, CategoryTrim, CategoryAccessory, CategoryStructure:
		return true
	}
	return false
}

// NeutralColor is the finish used when a coloured accessory is unavailable.
const NeutralColor = "Branco"

// ProductDimensions is the sellable unit's span in metres. Zero means
// "not informed"; callers pick a category default.
type ProductDimensions struct {
	Width  float64 `json:"width,omitempty"`
	Length float64 `json:"length,omitempty"`
}

func (d ProductDimensions) WidthOr(def float64) float64 {
	if d.Width > 0 {
		return d.Width
	}
	return def
}

func (d ProductDimensions) LengthOr(def float64) float64 {
	if d.Length > 0 {
		return d.Length
	}
	return def
}

// Product is a read-only catalog entry.
//
// Unit is informational only ("br" barra, "un" unidade, "cx" caixa).
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    Category          `json:"category"`
	SubCategory string            `json:"sub_category,omitempty"`
	Color       string            `json:"color"`
	Dimensions  ProductDimensions `json:"dimensions"`
	Price       decimal.Decimal   `json:"price"`
	Unit        string            `json:"unit"`
}
