package catalog

import (
	"forro_orcamento/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func p(id, name string, cat entities.Category, sub, color string, width, length float64, price, unit string) entities.Product {
	return entities.Product{
		ID:          id,
		Name:        name,
		Category:    cat,
		SubCategory: sub,
		Color:       color,
		Dimensions:  entities.ProductDimensions{Width: width, Length: length},
		Price:       decimal.RequireFromString(price),
		Unit:        unit,
	}
}

const (
	forro     = entities.CategoryMainCovering
	arremate  = entities.CategoryTrim
	acessorio = entities.CategoryAccessory
	estrutura = entities.CategoryStructure
)

// Products returns a fresh copy of the built-in catalog, in definition order.
// Order matters: the resolver breaks ties by it.
func Products() []entities.Product {
	return []entities.Product{
		// Forros PVC liso
		p("62", "Forro PVC 6MM x 6MT Branco", forro, "PVC Liso", "Branco", 0.20, 6.0, "15.50", "br"),
		p("105", "Forro PVC 200x8MM BRC Neve", forro, "PVC Liso", "Branco Neve", 0.20, 6.0, "20.00", "br"),
		p("21", "Forro PVC 12MT Branco", forro, "PVC Liso", "Branco", 0.20, 12.0, "40.00", "br"),

		// Forros madeirados
		p("79", "Forro PVC Canelado 20cm Cerejeira", forro, "PVC Madeirado", "Cerejeira", 0.20, 6.0, "40.00", "br"),
		p("11", "Forro PVC 25cm Imbuia", forro, "PVC Madeirado", "Imbuia", 0.25, 6.0, "45.00", "br"),
		p("66", "Forro PVC 25cm Cerejeira", forro, "PVC Madeirado", "Cerejeira", 0.25, 6.0, "45.00", "br"),
		p("100", "Forro PVC Mogno", forro, "PVC Madeirado", "Mogno", 0.20, 6.0, "45.00", "br"),
		p("67", "Forro PVC Tabaco", forro, "PVC Madeirado", "Tabaco", 0.20, 6.0, "45.00", "br"),
		p("126", "Forro PVC Amadeirado 6MT Malbec", forro, "PVC Madeirado", "Malbec", 0.20, 6.0, "60.00", "br"),

		// Forros premium / cores especiais
		p("1", "Forro PVC 25cm Armany", forro, "PVC Premium", "Armany", 0.25, 6.0, "45.00", "br"),
		p("95", "Forro PVC 25cm Champanhe", forro, "PVC Premium", "Champanhe", 0.25, 6.0, "45.00", "br"),
		p("97", "Forro PVC 25cm Cinza", forro, "PVC Premium", "Cinza", 0.25, 6.0, "45.00", "br"),
		p("33", "Forro PVC 20cm Preto", forro, "PVC Premium", "Preto", 0.20, 6.0, "45.00", "br"),

		// Painéis
		p("118", "Painel 2,90x0,18 Imbuia", forro, "Painel", "Imbuia", 0.18, 2.90, "100.00", "un"),
		p("117", "Painel Ripado 2,90x0,18 Cerejeira", forro, "Painel Ripado", "Cerejeira", 0.18, 2.90, "100.00", "un"),
		p("122", "Painel Ripado 2,90x0,18 Preto", forro, "Painel Ripado", "Preto", 0.18, 2.90, "100.00", "un"),

		// Arremates neutros
		p("38", "Arremate PVC U 6MT Branco", arremate, "Tipo U", "Branco", 0, 6.0, "20.00", "br"),
		p("34", "Arremate PVC Moldura 6MT Stili Branco", arremate, "Moldura", "Branco", 0, 6.0, "25.00", "br"),
		p("35", "Arremate PVC Moldura 7MT Eco Plast", arremate, "Moldura", "Branco", 0, 7.0, "28.00", "br"),

		// Arremates coloridos / madeirados
		p("94", "Arremate H Cerejeira", arremate, "Tipo H", "Cerejeira", 0, 6.0, "40.00", "br"),
		p("85", "Arremate U 6MT Cerejeira", arremate, "Tipo U", "Cerejeira", 0, 6.0, "36.00", "br"),
		p("76", "Arremate Stily 6MT Cerejeira", arremate, "Moldura", "Cerejeira", 0, 6.0, "38.00", "br"),
		p("113", "Arremate H Imbuia", arremate, "Tipo H", "Imbuia", 0, 6.0, "40.00", "br"),
		p("125", "Arremate U Imbuia", arremate, "Tipo U", "Imbuia", 0, 6.0, "38.00", "br"),
		p("7", "Arremate Stily 6MT Imbuia", arremate, "Moldura", "Imbuia", 0, 6.0, "40.00", "br"),
		p("115", "Arremate H Mogno", arremate, "Tipo H", "Mogno", 0, 6.0, "40.00", "br"),
		p("104", "Arremate Tipo U Mogno", arremate, "Tipo U", "Mogno", 0, 6.0, "36.00", "br"),
		p("99", "Arremate H Tabaco", arremate, "Tipo H", "Tabaco", 0, 6.0, "40.00", "br"),
		p("86", "Arremate U 6MT Tabaco", arremate, "Tipo U", "Tabaco", 0, 6.0, "36.00", "br"),
		p("123", "Arremate F Tabaco", arremate, "Tipo F", "Tabaco", 0, 6.0, "38.00", "br"),
		p("9", "Arremate Stily 6MT Armamy", arremate, "Moldura", "Armany", 0, 6.0, "40.00", "br"),
		p("10", "Arremate Moldura Gesso 6MT Armany", arremate, "Moldura Gesso", "Armany", 0, 6.0, "45.00", "br"),
		p("96", "Arremate Moldura Gesso 6MT Champanhe", arremate, "Moldura Gesso", "Champanhe", 0, 6.0, "45.00", "br"),
		p("98", "Arremate Moldura Gesso 7MT Cinza", arremate, "Moldura Gesso", "Cinza", 0, 7.0, "45.00", "br"),
		p("82", "Arremate Stily 6MT Preto", arremate, "Moldura", "Preto", 0, 6.0, "45.00", "br"),
		p("127", "Roda Forro 6MT Malbec", arremate, "Moldura", "Malbec", 0, 6.0, "50.00", "br"),

		// Cantoneiras e cantos
		p("120", "Cantoneira 3MT Cerejeira", arremate, "Cantoneira", "Cerejeira", 0, 3.0, "40.00", "br"),
		p("121", "Cantoneira Imbuia", arremate, "Cantoneira", "Imbuia", 0, 3.0, "40.00", "br"),
		p("119", "Cantoneira 3MT Preta", arremate, "Cantoneira", "Preto", 0, 3.0, "40.00", "br"),
		p("19", "Canto Interno ER Branco", arremate, "Canto", "Branco", 0, 0, "8.00", "un"),

		// Acessórios
		p("25", "Gancheira 3/8 Inox Polida", acessorio, "Fixacao Gancheira", "Inox", 0, 0, "21.50", "un"),
		p("53", "Torre Pinça 400mm C/2 Furos", acessorio, "Fixacao", "Zincado", 0, 0, "100.00", "un"),
		p("45", "Parafuso Drywall Ponta Agulha 3,5x25", acessorio, "Parafuso Ponta Agulha", "Preto Fosfatizado", 0, 0, "0.10", "un"),
		p("77", "Parafuso Ripa 3,5x12", acessorio, "Parafuso Ripa", "Zincado", 0, 0, "0.08", "un"),
		p("44", "Parafuso Chip Chata 4,0x35 Parede", acessorio, "Parafuso Chip Parede", "Zincado Amarelo", 0, 0, "0.15", "un"),

		// Estrutura
		p("GEN_METALON", "Perfil Estrutural Metalon 15x15 6m", estrutura, "Metalon", "Galvanizado", 0, 6.0, "42.00", "br"),
		p("GEN_SARRAFO", "Sarrafo de Madeira 2,5x5cm 3m", estrutura, "Sarrafo", "Natural", 0, 3.0, "12.00", "br"),
	}
}
