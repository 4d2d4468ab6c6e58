package repository

import (
	"errors"
	"fmt"
	"strings"

	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/usecase/interfaces"
)

var (
	ErrEmptyCatalog       = errors.New("catalog has no products")
	ErrDuplicateProductID = errors.New("duplicate product id")
	ErrInvalidProduct     = errors.New("invalid product")
)

// CatalogMemoryRepository is the immutable in-memory product catalog.
//
// It is built once at startup and only read afterwards, so it is safe to
// share between concurrent requests without locking. Every accessor hands
// out copies.
type CatalogMemoryRepository struct {
	products []entities.Product
	byID     map[string]int
}

var _ interfaces.ICatalogRepository = (*CatalogMemoryRepository)(nil)

func NewCatalogMemoryRepository(products []entities.Product) (*CatalogMemoryRepository, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	r := &CatalogMemoryRepository{
		products: make([]entities.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(r.products, products)

	for i, p := range r.products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: empty id at position %d", ErrInvalidProduct, i)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("%w: product %s has unknown category %q", ErrInvalidProduct, id, p.Category)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: product %s has negative price", ErrInvalidProduct, id)
		}
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProductID, id)
		}
		r.byID[id] = i
	}
	return r, nil
}

func (r *CatalogMemoryRepository) FindByID(id string) (entities.Product, bool) {
	i, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return entities.Product{}, false
	}
	return r.products[i], true
}

func (r *CatalogMemoryRepository) Filter(match func(entities.Product) bool) []entities.Product {
	var out []entities.Product
	for _, p := range r.products {
		if match == nil || match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *CatalogMemoryRepository) All() []entities.Product {
	out := make([]entities.Product, len(r.products))
	copy(out, r.products)
	return out
}
