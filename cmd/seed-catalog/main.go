// Command seed-catalog writes the built-in product catalog to the
// products table so the API can be started with CATALOG_SOURCE=dynamodb.
package main

import (
	"context"
	"log"
	"time"

	"forro_orcamento/internal/adapter/persistence/repository"
	"forro_orcamento/internal/config"
	"forro_orcamento/internal/infrastructure/catalog"
	"forro_orcamento/internal/infrastructure/database"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build the logger: %v", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("dynamodb unavailable", zap.Error(err))
	}

	repo := repository.NewProductDynamoRepository(ddb, cfg.ProductsTable)
	if err := usecase.SeedCatalog(ctx, repo, catalog.Products(), logger); err != nil {
		logger.Fatal("seed failed", zap.String("table", cfg.ProductsTable), zap.Error(err))
	}
}
