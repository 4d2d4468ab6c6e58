package response

import (
	"sort"

	"forro_orcamento/internal/domain/entities"
)

// Money is rendered as a fixed two decimal string (BRL).

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category,omitempty"`
	Color       string  `json:"color"`
	Width       float64 `json:"width,omitempty"`
	Length      float64 `json:"length,omitempty"`
	Price       string  `json:"price" example:"15.50"`
	Unit        string  `json:"unit"`
}

type LineItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Total    string          `json:"total" example:"170.50"`
	Note     string          `json:"note,omitempty"`
}

type CutLayoutResponse struct {
	Slats         int     `json:"slats"`
	StripWidth    float64 `json:"strip_width"`
	StripLength   float64 `json:"strip_length"`
	LastSlatWidth float64 `json:"last_slat_width"`
	PiecesPerSlat int     `json:"pieces_per_slat"`
	LastPiece     float64 `json:"last_piece"`
}

type BudgetResponse struct {
	ID                string             `json:"id"`
	MainProducts      []LineItemResponse `json:"main_products"`
	FinishingProducts []LineItemResponse `json:"finishing_products"`
	StructureProducts []LineItemResponse `json:"structure_products"`
	AccessoryProducts []LineItemResponse `json:"accessory_products"`
	TotalMaterialCost string             `json:"total_material_cost" example:"588.70"`
	LaborCost         string             `json:"labor_cost" example:"420.00"`
	TotalProjectCost  string             `json:"total_project_cost" example:"1008.70"`
	Width             float64            `json:"width"`
	Length            float64            `json:"length"`
	Area              float64            `json:"area"`
	WastePercent      float64            `json:"waste_percent"`
	StructureMaterial string             `json:"structure_material"`
	Justification     string             `json:"justification"`
	CutLayout         CutLayoutResponse  `json:"cut_layout"`
}

type SubCategoriesResponse struct {
	SubCategories []string `json:"sub_categories"`
}

type ColorsResponse struct {
	SubCategory string   `json:"sub_category"`
	Colors      []string `json:"colors"`
}

type ProductsResponse struct {
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}

type BatchItemResponse struct {
	Row       int             `json:"row"`
	ProductID string          `json:"product_id"`
	Budget    *BudgetResponse `json:"budget,omitempty"`
	Error     string          `json:"error,omitempty"`
}

type BatchResponse struct {
	Count  int                 `json:"count"`
	Failed int                 `json:"failed"`
	Items  []BatchItemResponse `json:"items"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		SubCategory: p.SubCategory,
		Color:       p.Color,
		Width:       p.Dimensions.Width,
		Length:      p.Dimensions.Length,
		Price:       p.Price.StringFixed(2),
		Unit:        p.Unit,
	}
}

func FromProducts(products []entities.Product) ProductsResponse {
	out := ProductsResponse{Count: len(products), Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, FromProduct(p))
	}
	return out
}

func FromBudget(b entities.BudgetResult) BudgetResponse {
	return BudgetResponse{
		ID:                b.ID,
		MainProducts:      fromLineItems(b.MainProducts),
		FinishingProducts: fromLineItems(b.FinishingProducts),
		StructureProducts: fromLineItems(b.StructureProducts),
		AccessoryProducts: fromLineItems(b.AccessoryProducts),
		TotalMaterialCost: b.TotalMaterialCost.StringFixed(2),
		LaborCost:         b.LaborCost.StringFixed(2),
		TotalProjectCost:  b.TotalProjectCost.StringFixed(2),
		Width:             b.Dimensions.Width,
		Length:            b.Dimensions.Length,
		Area:              b.Dimensions.Area(),
		WastePercent:      b.WastePercent,
		StructureMaterial: string(b.StructureMaterial),
		Justification:     b.Justification,
		CutLayout: CutLayoutResponse{
			Slats:         b.Layout.Slats,
			StripWidth:    b.Layout.StripWidth,
			StripLength:   b.Layout.StripLength,
			LastSlatWidth: b.Layout.LastSlatWidth,
			PiecesPerSlat: b.Layout.PiecesPerSlat,
			LastPiece:     b.Layout.LastPiece,
		},
	}
}

// FromBatch merges estimated and rejected rows back into spreadsheet order.
func FromBatch(items []entities.BatchItem) BatchResponse {
	sorted := append([]entities.BatchItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Row < sorted[j].Row })

	out := BatchResponse{Count: len(sorted), Items: make([]BatchItemResponse, 0, len(sorted))}
	for _, it := range sorted {
		item := BatchItemResponse{Row: it.Row, ProductID: it.ProductID, Error: it.Error}
		if it.Budget != nil {
			b := FromBudget(*it.Budget)
			item.Budget = &b
		} else {
			out.Failed++
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			Product:  FromProduct(it.Product),
			Quantity: it.Quantity,
			Total:    it.Total.StringFixed(2),
			Note:     it.Note,
		})
	}
	return out
}
