package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"forro_orcamento/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	budgetSheet = "Orcamento"
	moneyFormat = 4 // #,##0.00
)

var (
	ErrInvalidWorkbook = errors.New("invalid workbook")
	ErrEmptySheet      = errors.New("empty sheet")
)

var budgetHeader = []interface{}{"Grupo", "Código", "Produto", "Quantidade", "Unidade", "Preço unitário", "Total", "Observação"}

// WriteBudgetXLSX writes the budget as a single sheet spreadsheet with one
// row per line item followed by the totals.
func WriteBudgetXLSX(w io.Writer, b entities.BudgetResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), budgetSheet); err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(budgetSheet, "A1", &budgetHeader); err != nil {
		return err
	}
	if err := f.SetRowStyle(budgetSheet, 1, 1, bold); err != nil {
		return err
	}

	row := 2
	groups := []struct {
		name  string
		items []entities.LineItem
	}{
		{"Forro", b.MainProducts},
		{"Acabamentos", b.FinishingProducts},
		{"Estrutura", b.StructureProducts},
		{"Acessórios", b.AccessoryProducts},
	}
	for _, g := range groups {
		for _, it := range g.items {
			values := []interface{}{
				g.name,
				it.Product.ID,
				it.Product.Name,
				it.Quantity,
				it.Product.Unit,
				it.Product.Price.InexactFloat64(),
				it.Total.InexactFloat64(),
				it.Note,
			}
			if err := f.SetSheetRow(budgetSheet, cellName(1, row), &values); err != nil {
				return err
			}
			row++
		}
	}
	lastItemRow := row - 1

	row++
	totals := []struct {
		label string
		value float64
	}{
		{"Materiais", b.TotalMaterialCost.InexactFloat64()},
		{"Mão de obra", b.LaborCost.InexactFloat64()},
		{"Total do projeto", b.TotalProjectCost.InexactFloat64()},
	}
	firstTotalRow := row
	for _, t := range totals {
		if err := f.SetCellValue(budgetSheet, cellName(6, row), t.label); err != nil {
			return err
		}
		if err := f.SetCellValue(budgetSheet, cellName(7, row), t.value); err != nil {
			return err
		}
		row++
	}

	if lastItemRow >= 2 {
		if err := f.SetCellStyle(budgetSheet, cellName(6, 2), cellName(7, lastItemRow), money); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(budgetSheet, cellName(7, firstTotalRow), cellName(7, row-1), money); err != nil {
		return err
	}

	row++
	info := [][2]interface{}{
		{"Orçamento", b.ID},
		{"Largura (m)", b.Dimensions.Width},
		{"Comprimento (m)", b.Dimensions.Length},
		{"Estrutura", b.StructureMaterial.Label()},
		{"Perdas (%)", b.WastePercent},
		{"Justificativa", b.Justification},
	}
	for _, kv := range info {
		if err := f.SetCellValue(budgetSheet, cellName(1, row), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(budgetSheet, cellName(2, row), kv[1]); err != nil {
			return err
		}
		row++
	}

	_ = f.SetColWidth(budgetSheet, "C", "C", 42)
	_ = f.SetColWidth(budgetSheet, "H", "H", 40)

	return f.Write(w)
}

// ParseBudgetRequests reads rooms from the first sheet of a workbook.
//
// The first row is a header. Columns: width, length, product_id and the
// optional waste_margin and structure. Blank rows are skipped; rows that
// cannot be parsed come back as rejected batch items carrying the
// spreadsheet row number.
func ParseBudgetRequests(r io.Reader) ([]entities.BudgetRequest, []entities.BatchItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptySheet
	}

	var reqs []entities.BudgetRequest
	var rejected []entities.BatchItem
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		req, err := parseBudgetRow(row)
		req.Row = i + 1
		if err != nil {
			rejected = append(rejected, entities.BatchItem{Row: req.Row, ProductID: req.ProductID, Error: err.Error()})
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, rejected, nil
}

func parseBudgetRow(row []string) (entities.BudgetRequest, error) {
	var req entities.BudgetRequest
	if len(row) > 2 {
		req.ProductID = strings.TrimSpace(row[2])
	}
	if len(row) < 3 {
		return req, errors.New("expected width, length and product_id")
	}

	width, err := toFloat(row[0])
	if err != nil {
		return req, fmt.Errorf("invalid width %q", row[0])
	}
	length, err := toFloat(row[1])
	if err != nil {
		return req, fmt.Errorf("invalid length %q", row[1])
	}
	req.Dimensions = entities.RoomDimensions{Width: width, Length: length}

	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		waste, err := toFloat(row[3])
		if err != nil {
			return req, fmt.Errorf("invalid waste_margin %q", row[3])
		}
		req.Options.WasteMargin = &waste
	}
	if len(row) > 4 {
		req.Options.Structure = entities.ParseStructureMaterial(row[4])
	}
	return req, nil
}

// toFloat accepts both 3.5 and the Brazilian 3,5.
func toFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
