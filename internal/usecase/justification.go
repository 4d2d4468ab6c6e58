package usecase

import (
	"strconv"
	"strings"

	"forro_orcamento/internal/domain/entities"
)

// BuildJustification explains the material choices of a budget. It is a
// pure function of its inputs: same budget, same text.
func BuildJustification(result entities.BudgetResult, main entities.Product, trim *entities.Product) string {
	var b strings.Builder
	b.WriteString("Otimização baseada nas dimensões (")
	b.WriteString(formatMeters(result.Dimensions.Width))
	b.WriteString("x")
	b.WriteString(formatMeters(result.Dimensions.Length))
	b.WriteString("m) com estrutura ")
	b.WriteString(strings.ToLower(result.StructureMaterial.Label()))
	b.WriteString(". ")

	if IsPremiumLine(main) {
		b.WriteString("A escolha do forro ")
		b.WriteString(main.Color)
		b.WriteString(" foi combinada automaticamente com arremates da mesma linha para harmonia estética. ")
	} else {
		b.WriteString("Cálculo de aproveitamento de réguas com corte otimizado. ")
	}

	if trim != nil && trim.SubCategory != "" {
		b.WriteString("Inclui acabamento ")
		b.WriteString(trim.SubCategory)
		b.WriteString(" compatível.")
	}
	return strings.TrimSpace(b.String())
}

func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
