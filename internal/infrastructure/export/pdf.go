package export

import (
	"fmt"
	"io"
	"math"
	"time"

	"forro_orcamento/internal/domain/entities"

	"github.com/phpdave11/gofpdf"
)

const (
	pageContentWidth = 190.0
	diagramMaxWidth  = 170.0
	diagramMaxHeight = 90.0
)

type pdfGroup struct {
	title string
	items []entities.LineItem
}

// WriteBudgetPDF renders the printable quote: itemised groups, totals,
// justification and the strip cut diagram of the main covering.
func WriteBudgetPDF(w io.Writer, b entities.BudgetResult, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Orçamento de forro PVC", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Orçamento de Forro PVC"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Orçamento: %s", b.ID)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Data: %s", generatedAt.Format("02/01/2006 15:04")))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Ambiente: %.2fm x %.2fm (%.2fm²)  Estrutura: %s  Perdas: %.0f%%",
		b.Dimensions.Width, b.Dimensions.Length, b.Dimensions.Area(), b.StructureMaterial.Label(), b.WastePercent)))
	pdf.Ln(9)

	groups := []pdfGroup{
		{title: "Forro", items: b.MainProducts},
		{title: "Acabamentos", items: b.FinishingProducts},
		{title: "Estrutura", items: b.StructureProducts},
		{title: "Acessórios", items: b.AccessoryProducts},
	}
	for _, g := range groups {
		if len(g.items) == 0 {
			continue
		}
		writeGroup(pdf, tr, g)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	writeTotal(pdf, tr, "Materiais", b.TotalMaterialCost.StringFixed(2))
	writeTotal(pdf, tr, "Mão de obra", b.LaborCost.StringFixed(2))
	pdf.SetFont("Helvetica", "B", 11)
	writeTotal(pdf, tr, "Total do projeto", b.TotalProjectCost.StringFixed(2))
	pdf.Ln(4)

	if b.Justification != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr(b.Justification), "", "L", false)
		pdf.Ln(3)
	}

	if b.Layout.Slats > 0 {
		drawCutDiagram(pdf, tr, b)
	}

	return pdf.Output(w)
}

func writeGroup(pdf *gofpdf.Fpdf, tr func(string) string, g pdfGroup) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, tr(g.title))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(80, 6, "Produto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(15, 6, "Qtd", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 6, tr("Preço"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 6, "Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 6, "Obs.", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, it := range g.items {
		pdf.CellFormat(80, 6, tr(truncate(it.Product.Name, 48)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d %s", it.Quantity, it.Product.Unit), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, "R$ "+it.Product.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, "R$ "+it.Total.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, tr(truncate(it.Note, 30)), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeTotal(pdf *gofpdf.Fpdf, tr func(string) string, label, amount string) {
	pdf.CellFormat(pageContentWidth-40, 6, tr(label), "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, "R$ "+amount, "", 1, "R", false, 0, "")
}

// drawCutDiagram draws the room to scale with one column per strip and a
// dashed line at every joint along the strips.
func drawCutDiagram(pdf *gofpdf.Fpdf, tr func(string) string, b entities.BudgetResult) {
	l := b.Layout
	dims := b.Dimensions
	scale := math.Min(diagramMaxWidth/dims.Width, diagramMaxHeight/dims.Length)
	roomW, roomH := dims.Width*scale, dims.Length*scale

	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+roomH+20 > pageH-bottom {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Plano de corte")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(0, 4, tr(fmt.Sprintf(
		"%d réguas de %.2fm (última com %.2fm de largura). Cada régua: %d peça(s) de até %.2fm, última com %.2fm.",
		l.Slats, l.StripWidth, l.LastSlatWidth, l.PiecesPerSlat, l.StripLength, l.LastPiece)), "", "L", false)
	pdf.Ln(2)

	x0 := pdf.GetX() + (pageContentWidth-roomW)/2
	y0 := pdf.GetY()

	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(150, 150, 150)
	pdf.SetFillColor(245, 245, 240)
	for i := 0; i < l.Slats; i++ {
		x := x0 + float64(i)*l.StripWidth*scale
		w := l.StripWidth * scale
		if i == l.Slats-1 {
			w = l.LastSlatWidth * scale
		}
		pdf.Rect(x, y0, w, roomH, "FD")
	}

	pdf.SetDashPattern([]float64{1, 1}, 0)
	pdf.SetDrawColor(200, 60, 60)
	for j := 1; j < l.PiecesPerSlat; j++ {
		y := y0 + float64(j)*l.StripLength*scale
		pdf.Line(x0, y, x0+roomW, y)
	}
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetLineWidth(0.4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(x0, y0, roomW, roomH, "D")

	pdf.SetY(y0 + roomH + 2)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(pageContentWidth, 4, tr(fmt.Sprintf("Largura %.2fm x Comprimento %.2fm", dims.Width, dims.Length)), "", 1, "C", false, 0, "")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
