package usecase

import (
	"context"

	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LoadCatalog takes a one-time snapshot of the products table. A nil source,
// a read error or an empty table all keep the built-in catalog; the second
// return value reports whether the snapshot came from the source.
func LoadCatalog(ctx context.Context, source interfaces.IProductRepository, builtIn []entities.Product, logger *zap.Logger) ([]entities.Product, bool) {
	logger = logging.OrNop(logger).Named("catalog")
	if source == nil {
		return builtIn, false
	}

	products, err := source.ListAll(ctx)
	if err != nil {
		logger.Warn("products table unavailable, using built-in catalog", zap.Error(err))
		return builtIn, false
	}
	if len(products) == 0 {
		logger.Warn("products table is empty, using built-in catalog")
		return builtIn, false
	}

	logger.Info("catalog loaded from products table", zap.Int("products", len(products)))
	return products, true
}

// SeedCatalog writes the given products to the products table, keeping
// their order.
func SeedCatalog(ctx context.Context, dest interfaces.IProductRepository, products []entities.Product, logger *zap.Logger) error {
	logger = logging.OrNop(logger).Named("catalog")
	if err := dest.PutAll(ctx, products); err != nil {
		logger.Error("seeding products table failed", zap.Error(err))
		return err
	}
	logger.Info("products table seeded", zap.Int("products", len(products)))
	return nil
}
