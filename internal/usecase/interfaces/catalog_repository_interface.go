package interfaces

import (
	"context"
	"forro_orcamento/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

// ICatalogRepository is the read-only, in-memory catalog every estimation
// reads from. Implementations must keep definition order and never mutate.
type ICatalogRepository interface {
	FindByID(id string) (entities.Product, bool)
	Filter(match func(entities.Product) bool) []entities.Product
	All() []entities.Product
}

// IProductRepository abstracts the optional DynamoDB products table the
// catalog can be snapshotted from at startup.
type IProductRepository interface {
	ListAll(ctx context.Context) ([]entities.Product, error)
	PutAll(ctx context.Context, products []entities.Product) error
}
