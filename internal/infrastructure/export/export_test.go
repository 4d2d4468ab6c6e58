package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"forro_orcamento/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleBudget() entities.BudgetResult {
	slat := entities.Product{ID: "62", Name: "Forro PVC 6MM x 6MT Branco", Unit: "br", Price: decimal.RequireFromString("15.50")}
	trim := entities.Product{ID: "38", Name: "Arremate PVC U 6MT Branco", Unit: "br", Price: decimal.RequireFromString("20.00")}
	return entities.BudgetResult{
		ID: "budget-1",
		MainProducts: []entities.LineItem{
			{Product: slat, Quantity: 11, Total: decimal.RequireFromString("170.50"), Note: "Cobertura de 12.00m² (considerando perdas)"},
		},
		FinishingProducts: []entities.LineItem{
			{Product: trim, Quantity: 3, Total: decimal.RequireFromString("60.00"), Note: "Perímetro: 14.00m"},
		},
		TotalMaterialCost: decimal.RequireFromString("230.50"),
		LaborCost:         decimal.RequireFromString("420"),
		TotalProjectCost:  decimal.RequireFromString("650.50"),
		Dimensions:        entities.RoomDimensions{Width: 3, Length: 7},
		WastePercent:      10,
		StructureMaterial: entities.StructureMetal,
		Justification:     "Otimização baseada nas dimensões (3x7m) com estrutura metálica.",
		Layout:            entities.CutLayout{Slats: 15, StripWidth: 0.2, StripLength: 6, LastSlatWidth: 0.2, PiecesPerSlat: 2, LastPiece: 1},
	}
}

func TestWriteBudgetPDF(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBudgetPDF(&buf, sampleBudget(), time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteBudgetPDF_WithoutLayout(t *testing.T) {
	b := sampleBudget()
	b.Layout = entities.CutLayout{}
	var buf bytes.Buffer
	require.NoError(t, WriteBudgetPDF(&buf, b, time.Now()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteBudgetXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBudgetXLSX(&buf, sampleBudget()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, budgetSheet, f.GetSheetName(0))
	rows, err := f.GetRows(budgetSheet)
	require.NoError(t, err)

	assert.Equal(t, "Grupo", rows[0][0])
	assert.Equal(t, []string{"Forro", "62", "Forro PVC 6MM x 6MT Branco", "11", "br"}, rows[1][:5])
	assert.Equal(t, "Acabamentos", rows[2][0])

	total, err := f.GetCellValue(budgetSheet, "F7")
	require.NoError(t, err)
	assert.Equal(t, "Total do projeto", total)
	raw, err := f.GetCellValue(budgetSheet, "G7", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "650.5", raw)
}

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, r := range rows {
		r := r
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseBudgetRequests(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"width", "length", "product_id", "waste_margin", "structure"},
		{3, 4, "62"},
		{"2,5", "3.5", "79", "0.15", "Madeira"},
		{" "},
		{"x", 4, "62"},
		{3, 4},
		{3, 4, "62", "", "Metálica"},
		{3, 4, "62", "", "wood"},
	})

	reqs, rejected, err := ParseBudgetRequests(buf)
	require.NoError(t, err)

	require.Len(t, reqs, 4)
	assert.Equal(t, entities.BudgetRequest{Row: 2, Dimensions: entities.RoomDimensions{Width: 3, Length: 4}, ProductID: "62"}, reqs[0])

	assert.Equal(t, 3, reqs[1].Row)
	assert.Equal(t, entities.RoomDimensions{Width: 2.5, Length: 3.5}, reqs[1].Dimensions)
	assert.Equal(t, "79", reqs[1].ProductID)
	require.NotNil(t, reqs[1].Options.WasteMargin)
	assert.Equal(t, 0.15, *reqs[1].Options.WasteMargin)
	assert.Equal(t, entities.StructureWood, reqs[1].Options.Structure)

	assert.Equal(t, 7, reqs[2].Row)
	assert.Equal(t, entities.StructureMetal, reqs[2].Options.Structure)
	assert.Nil(t, reqs[2].Options.WasteMargin)
	assert.Equal(t, 8, reqs[3].Row)
	assert.Equal(t, entities.StructureWood, reqs[3].Options.Structure)

	require.Len(t, rejected, 2)
	assert.Equal(t, 5, rejected[0].Row)
	assert.Equal(t, "62", rejected[0].ProductID)
	assert.True(t, strings.HasPrefix(rejected[0].Error, "invalid width"))
	assert.Equal(t, 6, rejected[1].Row)
}

func TestParseBudgetRequests_ReadsBackExportedLabel(t *testing.T) {
	label := entities.StructureMetal.Label()
	reqs, _, err := ParseBudgetRequests(buildWorkbook(t, [][]interface{}{
		{"width", "length", "product_id", "waste_margin", "structure"},
		{3, 4, "62", 0.1, label},
		{3, 4, "62", 0.1, entities.StructureWood.Label()},
	}))
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.True(t, reqs[0].Options.Structure.Valid(), label)
	assert.Equal(t, entities.StructureMetal, reqs[0].Options.Structure)
	assert.Equal(t, entities.StructureWood, reqs[1].Options.Structure)
}

func TestParseBudgetRequests_Errors(t *testing.T) {
	_, _, err := ParseBudgetRequests(strings.NewReader("not a workbook"))
	if !errors.Is(err, ErrInvalidWorkbook) {
		t.Fatalf("expected ErrInvalidWorkbook, got %v", err)
	}

	_, _, err = ParseBudgetRequests(buildWorkbook(t, [][]interface{}{{"width", "length", "product_id"}}))
	if !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("expected ErrEmptySheet, got %v", err)
	}
}
