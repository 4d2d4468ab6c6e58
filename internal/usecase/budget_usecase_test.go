package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"forro_orcamento/internal/adapter/persistence/repository"
	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/infrastructure/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBudgetUseCase(t *testing.T, products []entities.Product) *BudgetUseCase {
	t.Helper()
	repo, err := repository.NewCatalogMemoryRepository(products)
	require.NoError(t, err)
	uc := NewBudgetUseCase(repo, nil)
	uc.newID = func() string { return "budget-1" }
	return uc
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func findItem(t *testing.T, items []entities.LineItem, productID string) entities.LineItem {
	t.Helper()
	for _, it := range items {
		if it.Product.ID == productID {
			return it
		}
	}
	t.Fatalf("product %s not in %+v", productID, items)
	return entities.LineItem{}
}

func floatPtr(v float64) *float64 { return &v }

func TestBudgetUseCase_Estimate_StandardRoom(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())

	res, err := uc.Estimate(context.Background(), entities.RoomDimensions{Width: 3, Length: 4}, "62", entities.EstimateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "budget-1", res.ID)
	assert.Equal(t, 10.0, res.WastePercent)
	assert.Equal(t, entities.StructureMetal, res.StructureMaterial)
	assert.Equal(t, entities.RoomDimensions{Width: 3, Length: 4}, res.Dimensions)

	// 15 slats x 4m = 60m, 60/6 x 1.10 = 11 bars.
	require.Len(t, res.MainProducts, 1)
	assert.Equal(t, 11, res.MainProducts[0].Quantity)
	assertMoney(t, "170.50", res.MainProducts[0].Total)
	assert.Equal(t, "Cobertura de 12.00m² (considerando perdas)", res.MainProducts[0].Note)

	// Perimeter 14m x 1.05 / 6m = 2.45 -> 3 bars.
	require.Len(t, res.FinishingProducts, 2)
	trim := findItem(t, res.FinishingProducts, "38")
	assert.Equal(t, 3, trim.Quantity)
	assert.Equal(t, "Perímetro: 14.00m", trim.Note)
	corner := findItem(t, res.FinishingProducts, "19")
	assert.Equal(t, 4, corner.Quantity)

	// floor(4/0.6)-1 = 5 lines x 3m = 15m of metalon -> 3 bars of 6m.
	require.Len(t, res.StructureProducts, 1)
	assert.Equal(t, "GEN_METALON", res.StructureProducts[0].Product.ID)
	assert.Equal(t, 3, res.StructureProducts[0].Quantity)

	require.Len(t, res.AccessoryProducts, 3)
	assert.Equal(t, 8, findItem(t, res.AccessoryProducts, "25").Quantity)
	assert.Equal(t, 240, findItem(t, res.AccessoryProducts, "45").Quantity)
	assert.Equal(t, 28, findItem(t, res.AccessoryProducts, "44").Quantity)

	assertMoney(t, "588.70", res.TotalMaterialCost)
	assertMoney(t, "420.00", res.LaborCost)
	assertMoney(t, "1008.70", res.TotalProjectCost)
	assert.Equal(t,
		"Otimização baseada nas dimensões (3x4m) com estrutura metálica. Cálculo de aproveitamento de réguas com corte otimizado. Inclui acabamento Tipo U compatível.",
		res.Justification)
}

func TestBudgetUseCase_Estimate_AccessoryDensities(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())

	res, err := uc.Estimate(context.Background(), entities.RoomDimensions{Width: 5, Length: 5}, "62", entities.EstimateOptions{})
	require.NoError(t, err)

	assert.Equal(t, 17, findItem(t, res.AccessoryProducts, "25").Quantity)
	assert.Equal(t, 500, findItem(t, res.AccessoryProducts, "45").Quantity)
	assert.Equal(t, 40, findItem(t, res.AccessoryProducts, "44").Quantity)
}

func TestBudgetUseCase_Estimate_PremiumLineGetsMoldingAndColoredCorner(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())

	res, err := uc.Estimate(context.Background(), entities.RoomDimensions{Width: 3, Length: 4}, "79", entities.EstimateOptions{})
	require.NoError(t, err)

	require.Len(t, res.FinishingProducts, 2)
	trim := findItem(t, res.FinishingProducts, "76")
	assert.Equal(t, 3, trim.Quantity)
	assertMoney(t, "114.00", trim.Total)
	corner := findItem(t, res.FinishingProducts, "120")
	assert.Equal(t, 1, corner.Quantity)
	assert.Equal(t, "Para cantos internos/externos", corner.Note)

	assert.Equal(t,
		"Otimização baseada nas dimensões (3x4m) com estrutura metálica. A escolha do forro Cerejeira foi combinada automaticamente com arremates da mesma linha para harmonia estética. Inclui acabamento Moldura compatível.",
		res.Justification)
}

func TestBudgetUseCase_Estimate_TrimFallbacks(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())
	dims := entities.RoomDimensions{Width: 3, Length: 4}

	cases := []struct {
		name      string
		productID string
		trimID    string
		cornerID  string
	}{
		{name: "premium color with gesso molding", productID: "95", trimID: "96", cornerID: "19"},
		{name: "wood look without molding falls back to same color U", productID: "100", trimID: "104", cornerID: "19"},
		{name: "color without trims falls back to neutral U", productID: "105", trimID: "38", cornerID: "19"},
		{name: "plain panel uses same color U", productID: "118", trimID: "125", cornerID: "121"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := uc.Estimate(context.Background(), dims, tc.productID, entities.EstimateOptions{})
			require.NoError(t, err)
			require.Len(t, res.FinishingProducts, 2)
			assert.Equal(t, tc.trimID, res.FinishingProducts[0].Product.ID)
			assert.Equal(t, tc.cornerID, res.FinishingProducts[1].Product.ID)
		})
	}
}

func TestBudgetUseCase_Estimate_WoodStructure(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())

	res, err := uc.Estimate(context.Background(), entities.RoomDimensions{Width: 3, Length: 4}, "62", entities.EstimateOptions{Structure: entities.StructureWood})
	require.NoError(t, err)

	require.Len(t, res.StructureProducts, 1)
	assert.Equal(t, "GEN_SARRAFO", res.StructureProducts[0].Product.ID)
	assert.Equal(t, 5, res.StructureProducts[0].Quantity)

	require.Len(t, res.AccessoryProducts, 2)
	screws := findItem(t, res.AccessoryProducts, "77")
	assert.Equal(t, 240, screws.Quantity)
	assert.Equal(t, "Parafuso Ripa (PVC em Madeira) (~20/m²)", screws.Note)
	assert.Equal(t, 28, findItem(t, res.AccessoryProducts, "44").Quantity)

	assert.Contains(t, res.Justification, "com estrutura madeira.")
}

func TestBudgetUseCase_Estimate_WasteMargin(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())
	dims := entities.RoomDimensions{Width: 3, Length: 4}

	res, err := uc.Estimate(context.Background(), dims, "62", entities.EstimateOptions{WasteMargin: floatPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 10, res.MainProducts[0].Quantity)
	assert.Equal(t, 0.0, res.WastePercent)

	res, err = uc.Estimate(context.Background(), dims, "62", entities.EstimateOptions{WasteMargin: floatPtr(0.25)})
	require.NoError(t, err)
	assert.Equal(t, 13, res.MainProducts[0].Quantity)
	assert.Equal(t, 25.0, res.WastePercent)
}

func TestBudgetUseCase_Estimate_TinyRoom(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())

	res, err := uc.Estimate(context.Background(), entities.RoomDimensions{Width: 0.01, Length: 0.5}, "62", entities.EstimateOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.MainProducts[0].Quantity)
	assert.Empty(t, res.StructureProducts)
	for _, it := range res.Items() {
		assert.GreaterOrEqual(t, it.Quantity, 1, it.Product.ID)
	}
	assert.Equal(t, 1, findItem(t, res.AccessoryProducts, "25").Quantity)
	assert.Equal(t, 1, findItem(t, res.AccessoryProducts, "45").Quantity)
	assert.Equal(t, 3, findItem(t, res.AccessoryProducts, "44").Quantity)
}

func TestBudgetUseCase_Estimate_LargestRoomRoundsUp(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())

	res, err := uc.Estimate(context.Background(), entities.RoomDimensions{Width: MaxRoomSide, Length: MaxRoomSide}, "62", entities.EstimateOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 50000 slats x 10000 m = 5e8 m, /6 m x 1.1 = 91666666.67 bars.
	assert.Equal(t, 91666667, res.MainProducts[0].Quantity)
	for _, it := range res.Items() {
		assert.Positive(t, it.Quantity, it.Product.ID)
	}
	screws := findItem(t, res.AccessoryProducts, "45")
	assert.Equal(t, 2_000_000_000, screws.Quantity)
}

func TestBudgetUseCase_Estimate_InvalidInput(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())
	ok := entities.RoomDimensions{Width: 3, Length: 4}

	cases := []struct {
		name string
		dims entities.RoomDimensions
		id   string
		opts entities.EstimateOptions
		want error
	}{
		{name: "zero width", dims: entities.RoomDimensions{Width: 0, Length: 4}, id: "62", want: ErrInvalidDimensions},
		{name: "negative length", dims: entities.RoomDimensions{Width: 3, Length: -1}, id: "62", want: ErrInvalidDimensions},
		{name: "nan", dims: entities.RoomDimensions{Width: math.NaN(), Length: 4}, id: "62", want: ErrInvalidDimensions},
		{name: "inf", dims: entities.RoomDimensions{Width: 3, Length: math.Inf(1)}, id: "62", want: ErrInvalidDimensions},
		{name: "side beyond int range", dims: entities.RoomDimensions{Width: 1e19, Length: 4}, id: "62", want: ErrInvalidDimensions},
		{name: "huge square", dims: entities.RoomDimensions{Width: 1e200, Length: 1e200}, id: "62", want: ErrInvalidDimensions},
		{name: "just over max side", dims: entities.RoomDimensions{Width: 3, Length: MaxRoomSide + 0.001}, id: "62", want: ErrInvalidDimensions},
		{name: "blank id", dims: ok, id: "  ", want: ErrInvalidProductID},
		{name: "unknown id", dims: ok, id: "999", want: ErrProductNotFound},
		{name: "not a main covering", dims: ok, id: "38", want: ErrProductNotFound},
		{name: "waste above one", dims: ok, id: "62", opts: entities.EstimateOptions{WasteMargin: floatPtr(1.5)}, want: ErrInvalidWasteMargin},
		{name: "negative waste", dims: ok, id: "62", opts: entities.EstimateOptions{WasteMargin: floatPtr(-0.1)}, want: ErrInvalidWasteMargin},
		{name: "unknown structure", dims: ok, id: "62", opts: entities.EstimateOptions{Structure: "aco"}, want: ErrInvalidStructure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := uc.Estimate(context.Background(), tc.dims, tc.id, tc.opts)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			assert.Empty(t, res.Items())
		})
	}
}

func TestBudgetUseCase_Estimate_MissingAccessoriesAreOmitted(t *testing.T) {
	main := entities.Product{
		ID:          "m1",
		Category:    entities.CategoryMainCovering,
		SubCategory: "PVC Liso",
		Color:       "Verde",
		Price:       decimal.RequireFromString("10"),
	}
	uc := newTestBudgetUseCase(t, []entities.Product{main})

	res, err := uc.Estimate(context.Background(), entities.RoomDimensions{Width: 3, Length: 4}, "m1", entities.EstimateOptions{})
	require.NoError(t, err)

	// Defaults: 0.20m x 6.0m strips.
	require.Len(t, res.MainProducts, 1)
	assert.Equal(t, 11, res.MainProducts[0].Quantity)
	assert.Empty(t, res.FinishingProducts)
	assert.Empty(t, res.StructureProducts)
	assert.Empty(t, res.AccessoryProducts)
	assertMoney(t, "110.00", res.TotalMaterialCost)
	assert.Equal(t,
		"Otimização baseada nas dimensões (3x4m) com estrutura metálica. Cálculo de aproveitamento de réguas com corte otimizado.",
		res.Justification)
}

func TestBudgetUseCase_Estimate_Idempotent(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())
	dims := entities.RoomDimensions{Width: 3.7, Length: 5.3}

	a, err := uc.Estimate(context.Background(), dims, "11", entities.EstimateOptions{})
	require.NoError(t, err)
	b, err := uc.Estimate(context.Background(), dims, "11", entities.EstimateOptions{})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBudgetUseCase_Estimate_TotalsAddUp(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())
	rooms := []entities.RoomDimensions{
		{Width: 0.01, Length: 0.01},
		{Width: 1.2, Length: 1.2},
		{Width: 2.35, Length: 7.9},
		{Width: 10, Length: 12.5},
	}

	for _, main := range uc.Products(entities.CategoryMainCovering, "", "") {
		for _, dims := range rooms {
			for _, structure := range []entities.StructureMaterial{entities.StructureMetal, entities.StructureWood} {
				res, err := uc.Estimate(context.Background(), dims, main.ID, entities.EstimateOptions{Structure: structure})
				require.NoError(t, err)

				sum := decimal.Zero
				for _, it := range res.Items() {
					require.GreaterOrEqual(t, it.Quantity, 1)
					require.True(t, it.Total.Equal(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))))
					sum = sum.Add(it.Total)
				}
				require.True(t, sum.Equal(res.TotalMaterialCost), "material total for %s %+v", main.ID, dims)
				require.True(t, res.TotalProjectCost.Equal(res.TotalMaterialCost.Add(res.LaborCost)))
			}
		}
	}
}

func TestBudgetUseCase_EstimateBatch(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())

	items := uc.EstimateBatch(context.Background(), []entities.BudgetRequest{
		{Row: 2, Dimensions: entities.RoomDimensions{Width: 3, Length: 4}, ProductID: "62"},
		{Row: 3, Dimensions: entities.RoomDimensions{Width: 3, Length: 4}, ProductID: "nope"},
		{Row: 4, Dimensions: entities.RoomDimensions{Width: 0, Length: 4}, ProductID: "62"},
	})

	require.Len(t, items, 3)
	require.NotNil(t, items[0].Budget)
	assertMoney(t, "1008.70", items[0].Budget.TotalProjectCost)
	assert.Nil(t, items[1].Budget)
	assert.Contains(t, items[1].Error, ErrProductNotFound.Error())
	assert.Equal(t, ErrInvalidDimensions.Error(), items[2].Error)
	assert.Equal(t, 4, items[2].Row)
}

func TestBudgetUseCase_CatalogQueries(t *testing.T) {
	uc := newTestBudgetUseCase(t, catalog.Products())

	assert.Equal(t, []string{"PVC Liso", "PVC Madeirado", "PVC Premium", "Painel", "Painel Ripado"}, uc.SubCategories())
	assert.Equal(t, []string{"Branco", "Branco Neve"}, uc.Colors("PVC Liso"))
	assert.Equal(t, []string{"Cerejeira", "Imbuia", "Mogno", "Tabaco", "Malbec"}, uc.Colors("PVC Madeirado"))
	assert.Empty(t, uc.Colors("Inexistente"))

	corners := uc.Products(entities.CategoryTrim, "Cantoneira", "")
	require.Len(t, corners, 3)
	assert.Equal(t, "120", corners[0].ID)

	white := uc.Products(entities.CategoryTrim, "", "branco")
	require.NotEmpty(t, white)
	for _, p := range white {
		assert.Equal(t, "Branco", p.Color)
	}
}

func TestCeilAndFloorQty(t *testing.T) {
	assert.Equal(t, 11, ceilQty(60.0/6.0*1.10))
	assert.Equal(t, 15, ceilQty(3.00/0.20))
	assert.Equal(t, 3, ceilQty(14.00*1.05/6.0))
	assert.Equal(t, 17, ceilQty(25/1.5))
	assert.Equal(t, 1, ceilQty(1e-12))
	assert.Equal(t, 0, ceilQty(0))
	assert.Equal(t, 2_000_000_000, ceilQty(2e9))
	assert.Equal(t, 2_000_000_002, ceilQty(2e9+1.4))
	assert.Equal(t, 123_456_790, ceilQty(123_456_789.001))
	assert.Equal(t, 2, floorQty(1.2/0.6))
	assert.Equal(t, 6, floorQty(4.0/0.6))
}

func TestPlanCuts(t *testing.T) {
	main := entities.Product{Dimensions: entities.ProductDimensions{Width: 0.20, Length: 6.0}}

	got := PlanCuts(entities.RoomDimensions{Width: 3, Length: 4}, main)
	assert.Equal(t, entities.CutLayout{Slats: 15, StripWidth: 0.2, StripLength: 6, LastSlatWidth: 0.2, PiecesPerSlat: 1, LastPiece: 4}, got)

	got = PlanCuts(entities.RoomDimensions{Width: 3.1, Length: 7}, main)
	assert.Equal(t, 16, got.Slats)
	assert.Equal(t, 0.1, got.LastSlatWidth)
	assert.Equal(t, 2, got.PiecesPerSlat)
	assert.Equal(t, 1.0, got.LastPiece)

	// Missing dimensions fall back to 0.20m x 6.0m strips.
	assert.Equal(t, got, PlanCuts(entities.RoomDimensions{Width: 3.1, Length: 7}, entities.Product{}))
}
