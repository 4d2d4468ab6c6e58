package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidDimensions  = errors.New("invalid room dimensions")
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidWasteMargin = errors.New("invalid waste margin")
	ErrInvalidStructure   = errors.New("invalid structure material")
	ErrProductNotFound    = errors.New("main product not found")
)

// Fixed installation policy. These are field heuristics, not derived values.
const (
	DefaultWasteMargin = 0.10

	defaultStripWidth  = 0.20
	defaultStripLength = 6.0
	defaultTrimLength  = 6.0
	trimAllowance      = 1.05

	structureSpacing     = 0.60
	metalBarLength       = 6.0
	woodBarLength        = 3.0
	hangerAreaPerUnit    = 1.5
	screwsPerSquareMeter = 20.0
	wallScrewSpacing     = 0.5

	coloredCornerQty = 1
	genericCornerQty = 4
)

// LaborRatePerSquareMeter is the fixed installation price in BRL per m².
var LaborRatePerSquareMeter = decimal.RequireFromString("35.00")

// IBudgetUseCase exposes the budget engine and the catalog queries the
// quote form needs.
type IBudgetUseCase interface {
	SubCategories() []string
	Colors(subCategory string) []string
	Products(category entities.Category, subCategory, color string) []entities.Product
	Estimate(ctx context.Context, dims entities.RoomDimensions, productID string, opts entities.EstimateOptions) (entities.BudgetResult, error)
	EstimateBatch(ctx context.Context, reqs []entities.BudgetRequest) []entities.BatchItem
}

type BudgetUseCase struct {
	catalog  interfaces.ICatalogRepository
	resolver *ProductResolver
	logger   *zap.Logger
	newID    func() string
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(catalog interfaces.ICatalogRepository, logger *zap.Logger) *BudgetUseCase {
	return &BudgetUseCase{
		catalog:  catalog,
		resolver: NewProductResolver(catalog),
		logger:   logging.OrNop(logger).Named("budget"),
		newID:    uuid.NewString,
	}
}

// SubCategories lists the distinct main covering lines in catalog order.
func (u *BudgetUseCase) SubCategories() []string {
	var out []string
	seen := map[string]struct{}{}
	for _, p := range u.catalog.Filter(func(p entities.Product) bool {
		return p.Category == entities.CategoryMainCovering && p.SubCategory != ""
	}) {
		if _, ok := seen[p.SubCategory]; ok {
			continue
		}
		seen[p.SubCategory] = struct{}{}
		out = append(out, p.SubCategory)
	}
	return out
}

// Colors lists the distinct colors available for a main covering line.
func (u *BudgetUseCase) Colors(subCategory string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, p := range u.catalog.Filter(func(p entities.Product) bool {
		return p.Category == entities.CategoryMainCovering && p.SubCategory == subCategory
	}) {
		if _, ok := seen[p.Color]; ok {
			continue
		}
		seen[p.Color] = struct{}{}
		out = append(out, p.Color)
	}
	return out
}

// Products filters the catalog. Empty arguments do not constrain.
func (u *BudgetUseCase) Products(category entities.Category, subCategory, color string) []entities.Product {
	rule := Rule("filter", SubCategoryContains(strings.TrimSpace(subCategory)), ColorIs(strings.TrimSpace(color)))
	return u.catalog.Filter(func(p entities.Product) bool {
		if category != "" && p.Category != category {
			return false
		}
		return rule.Matches(p)
	})
}

// Estimate converts the room geometry and the chosen main product into an
// itemised budget. Only invalid input and a missing main product fail;
// every other unresolved product just drops its line.
func (u *BudgetUseCase) Estimate(ctx context.Context, dims entities.RoomDimensions, productID string, opts entities.EstimateOptions) (entities.BudgetResult, error) {
	if !validLength(dims.Width) || !validLength(dims.Length) {
		return entities.BudgetResult{}, ErrInvalidDimensions
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.BudgetResult{}, ErrInvalidProductID
	}
	waste := DefaultWasteMargin
	if opts.WasteMargin != nil {
		waste = *opts.WasteMargin
		if math.IsNaN(waste) || waste < 0 || waste > 1 {
			return entities.BudgetResult{}, ErrInvalidWasteMargin
		}
	}
	structure := opts.Structure
	if structure == "" {
		structure = entities.StructureMetal
	}
	if !structure.Valid() {
		return entities.BudgetResult{}, ErrInvalidStructure
	}

	main, ok := u.catalog.FindByID(productID)
	if !ok || main.Category != entities.CategoryMainCovering {
		u.logger.Info("main product not found", zap.String("product_id", productID))
		return entities.BudgetResult{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	result := entities.BudgetResult{
		ID:                u.newID(),
		Dimensions:        dims,
		WastePercent:      math.Round(waste*100*1e6) / 1e6,
		StructureMaterial: structure,
	}

	result.MainProducts = u.mainCovering(dims, main, waste)
	result.Layout = PlanCuts(dims, main)
	trim, finishing := u.finishing(dims, main)
	result.FinishingProducts = finishing
	result.StructureProducts = u.structure(dims, structure)
	result.AccessoryProducts = u.accessories(dims, structure)

	material := decimal.Zero
	for _, it := range result.Items() {
		material = material.Add(it.Total)
	}
	result.TotalMaterialCost = material
	result.LaborCost = decimal.NewFromFloat(dims.Width).Mul(decimal.NewFromFloat(dims.Length)).Mul(LaborRatePerSquareMeter)
	result.TotalProjectCost = material.Add(result.LaborCost)
	result.Justification = BuildJustification(result, main, trim)

	u.logger.Debug("budget estimated",
		zap.String("budget_id", result.ID),
		zap.String("product_id", main.ID),
		zap.Float64("width", dims.Width),
		zap.Float64("length", dims.Length),
		zap.String("structure", string(structure)),
		zap.Int("items", len(result.Items())),
		zap.String("total", result.TotalProjectCost.StringFixed(2)))
	return result, nil
}

// EstimateBatch estimates every row independently; a failing row never
// aborts the others.
func (u *BudgetUseCase) EstimateBatch(ctx context.Context, reqs []entities.BudgetRequest) []entities.BatchItem {
	out := make([]entities.BatchItem, 0, len(reqs))
	for _, req := range reqs {
		item := entities.BatchItem{Row: req.Row, ProductID: req.ProductID}
		res, err := u.Estimate(ctx, req.Dimensions, req.ProductID, req.Options)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Budget = &res
		}
		out = append(out, item)
	}
	return out
}

// Slats run parallel to the length and are stacked across the width.
func (u *BudgetUseCase) mainCovering(dims entities.RoomDimensions, main entities.Product, waste float64) []entities.LineItem {
	stripWidth := main.Dimensions.WidthOr(defaultStripWidth)
	stripLength := main.Dimensions.LengthOr(defaultStripLength)

	slats := ceilQty(dims.Width / stripWidth)
	linear := float64(slats) * dims.Length
	bars := ceilQty(linear / stripLength * (1 + waste))

	return []entities.LineItem{
		lineItem(main, bars, fmt.Sprintf("Cobertura de %.2fm² (considerando perdas)", dims.Area())),
	}
}

// PlanCuts lays the main covering strips over the room, the way the
// installer cuts them. Widths and lengths are rounded to the millimetre.
func PlanCuts(dims entities.RoomDimensions, main entities.Product) entities.CutLayout {
	stripWidth := main.Dimensions.WidthOr(defaultStripWidth)
	stripLength := main.Dimensions.LengthOr(defaultStripLength)

	slats := ceilQty(dims.Width / stripWidth)
	pieces := ceilQty(dims.Length / stripLength)
	return entities.CutLayout{
		Slats:         slats,
		StripWidth:    stripWidth,
		StripLength:   stripLength,
		LastSlatWidth: roundMillimetre(dims.Width - float64(slats-1)*stripWidth),
		PiecesPerSlat: pieces,
		LastPiece:     roundMillimetre(dims.Length - float64(pieces-1)*stripLength),
	}
}

func roundMillimetre(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func (u *BudgetUseCase) finishing(dims entities.RoomDimensions, main entities.Product) (*entities.Product, []entities.LineItem) {
	trim, _, ok := u.resolver.First(TrimRules(main)...)
	if !ok {
		return nil, nil
	}

	perimeter := dims.Perimeter()
	bars := ceilQty(perimeter * trimAllowance / trim.Dimensions.LengthOr(defaultTrimLength))
	items := []entities.LineItem{
		lineItem(trim, bars, fmt.Sprintf("Perímetro: %.2fm", perimeter)),
	}

	corner, rule, ok := u.resolver.First(CornerRules(main)...)
	if ok {
		if rule == cornerRuleColored {
			items = append(items, lineItem(corner, coloredCornerQty, "Para cantos internos/externos"))
		} else {
			items = append(items, lineItem(corner, genericCornerQty, "Cantos internos (unid)"))
		}
	}
	return &trim, items
}

func (u *BudgetUseCase) structure(dims entities.RoomDimensions, material entities.StructureMaterial) []entities.LineItem {
	lines := max(0, floorQty(dims.Length/structureSpacing)-1)
	linear := float64(lines) * dims.Width
	if linear <= 0 {
		return nil
	}

	sub, defLength, note := "Metalon", metalBarLength, fmt.Sprintf("Estrutura Metalon a cada %.2fm", structureSpacing)
	if material == entities.StructureWood {
		sub, defLength, note = "Sarrafo", woodBarLength, fmt.Sprintf("Sarrafo de madeira a cada %.2fm", structureSpacing)
	}

	bar, ok := u.resolver.Resolve(entities.CategoryStructure, sub, "")
	if !ok {
		return nil
	}
	bars := ceilQty(linear / bar.Dimensions.LengthOr(defLength))
	if bars == 0 {
		return nil
	}
	return []entities.LineItem{lineItem(bar, bars, note)}
}

func (u *BudgetUseCase) accessories(dims entities.RoomDimensions, material entities.StructureMaterial) []entities.LineItem {
	var items []entities.LineItem
	area := dims.Area()

	// Wood battens are fixed straight to the joists; only metal needs hangers.
	if material == entities.StructureMetal {
		if hanger, ok := u.resolver.Resolve(entities.CategoryAccessory, "Gancheira", ""); ok {
			items = append(items, lineItem(hanger, ceilQty(area/hangerAreaPerUnit), "Sustentação para metalon"))
		}
	}

	screwSub, screwNote := "Ponta Agulha", "Ponta Agulha (PVC em Metal)"
	if material == entities.StructureWood {
		screwSub, screwNote = "Ripa", "Parafuso Ripa (PVC em Madeira)"
	}
	if screw, ok := u.resolver.Resolve(entities.CategoryAccessory, screwSub, ""); ok {
		items = append(items, lineItem(screw, ceilQty(area*screwsPerSquareMeter), fmt.Sprintf("%s (~%.0f/m²)", screwNote, screwsPerSquareMeter)))
	}

	if wall, ok := u.resolver.Resolve(entities.CategoryAccessory, "Parede", ""); ok {
		items = append(items, lineItem(wall, ceilQty(dims.Perimeter()/wallScrewSpacing), "Fixação arremates (parede)"))
	}
	return items
}

const cornerRuleColored = "corner-colored"

// IsPremiumLine reports whether the main product belongs to a premium or
// wood-look line, which gets coordinated molding trims.
func IsPremiumLine(main entities.Product) bool {
	return strings.Contains(main.SubCategory, "Premium") || strings.Contains(main.SubCategory, "Madeirado")
}

// TrimRules is the trim fallback hierarchy for a main product.
func TrimRules(main entities.Product) []MatchRule {
	preferred := []string{"Tipo U", "Stily"}
	if IsPremiumLine(main) {
		preferred = []string{"Moldura", "Stily"}
	}
	return []MatchRule{
		Rule("trim-preferred", InCategory(entities.CategoryTrim), SubCategoryContains(preferred...), ColorIs(main.Color)),
		Rule("trim-u-same-color", InCategory(entities.CategoryTrim), SubCategoryContains("Tipo U"), ColorIs(main.Color)),
		Rule("trim-u-neutral", InCategory(entities.CategoryTrim), SubCategoryContains("Tipo U"), ColorIs(entities.NeutralColor)),
	}
}

// CornerRules prefers a color matched angle bar, then the neutral corner piece.
func CornerRules(main entities.Product) []MatchRule {
	return []MatchRule{
		Rule(cornerRuleColored, InCategory(entities.CategoryTrim), SubCategoryContains("Cantoneira"), ColorIs(main.Color)),
		Rule("corner-generic", InCategory(entities.CategoryTrim), SubCategoryIs("Canto"), ColorIs(entities.NeutralColor)),
	}
}

func lineItem(p entities.Product, qty int, note string) entities.LineItem {
	return entities.LineItem{
		Product:  p,
		Quantity: qty,
		Total:    p.Price.Mul(decimal.NewFromInt(int64(qty))),
		Note:     note,
	}
}

// MaxRoomSide bounds each room side in metres. Every quantity derived from
// a room within it fits an int, so rounding up never wraps.
const MaxRoomSide = 10_000.0

func validLength(v float64) bool {
	return v > 0 && v <= MaxRoomSide && !math.IsNaN(v)
}

// Quantities within this relative distance of an integer are treated as
// that integer, so 3.00/0.20 is 15 slats and not 16. The window never
// exceeds maxQtySnap units, so large requirements still round up.
const (
	qtyTolerance = 1e-9
	maxQtySnap   = 1e-6
)

// ceilQty rounds a material requirement up to whole sellable units. Any
// positive requirement yields at least one unit.
func ceilQty(x float64) int {
	if x <= 0 {
		return 0
	}
	if r, ok := nearInteger(x); ok {
		return max(int(r), 1)
	}
	return max(int(math.Ceil(x)), 1)
}

func floorQty(x float64) int {
	if r, ok := nearInteger(x); ok {
		return int(r)
	}
	return int(math.Floor(x))
}

func nearInteger(x float64) (float64, bool) {
	r := math.Round(x)
	return r, math.Abs(x-r) <= math.Min(qtyTolerance*math.Max(1, math.Abs(x)), maxQtySnap)
}
