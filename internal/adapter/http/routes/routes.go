package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "forro_orcamento/docs" // This will be auto-generated
	"forro_orcamento/internal/adapter/http/handlers"
	"forro_orcamento/internal/adapter/http/middleware"
	"forro_orcamento/internal/adapter/persistence/repository"
	"forro_orcamento/internal/config"
	"forro_orcamento/internal/infrastructure/advisory"
	"forro_orcamento/internal/infrastructure/catalog"
	"forro_orcamento/internal/infrastructure/database"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/infrastructure/payments"
	"forro_orcamento/internal/usecase"
	"forro_orcamento/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const catalogLoadTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg := config.Load()

	logger, err := logging.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build the logger: %v", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	router, err := NewRouter(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}

	logger.Info("listening", zap.Int("port", cfg.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter wires the catalog, the external gateways and every handler
// into a gin engine.
func NewRouter(cfg config.Config, logger *zap.Logger) (*gin.Engine, error) {
	logger = logging.OrNop(logger)

	router := gin.New()
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	catalogRepo, err := loadCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}

	var advisoryGateway interfaces.IAdvisoryGateway
	gemini, err := advisory.NewGeminiGateway(cfg, logger)
	if err != nil {
		logger.Warn("advisory gateway not configured", zap.Error(err))
	} else {
		advisoryGateway = gemini
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	budgetUseCase := usecase.NewBudgetUseCase(catalogRepo, logger)
	advisoryUseCase := usecase.NewAdvisoryUseCase(advisoryGateway, cfg.AdvisoryTimeout, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(budgetUseCase, paymentGateway, cfg.PaymentGatewayMock, logger)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase, advisoryUseCase, logger)
	adviceHandler := handlers.NewAdviceHandler(advisoryUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, logger)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, budgetHandler)
	addBudgetRoutes(v1, budgetHandler, checkoutHandler)
	addAdviceRoutes(v1, adviceHandler)

	return router, nil
}

// loadCatalog snapshots the products table when CATALOG_SOURCE=dynamodb and
// otherwise serves the built-in catalog.
func loadCatalog(cfg config.Config, logger *zap.Logger) (*repository.CatalogMemoryRepository, error) {
	builtIn := catalog.Products()
	if cfg.CatalogSource != config.CatalogSourceDynamoDB {
		return repository.NewCatalogMemoryRepository(builtIn)
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()

	var source interfaces.IProductRepository
	ddb, err := database.ConnectDynamoDB(ctx, cfg, logger)
	if err != nil {
		logger.Warn("dynamodb unavailable", zap.Error(err))
	} else {
		source = repository.NewProductDynamoRepository(ddb, cfg.ProductsTable)
	}

	products, fromTable := usecase.LoadCatalog(ctx, source, builtIn, logger)
	repo, err := repository.NewCatalogMemoryRepository(products)
	if err != nil && fromTable {
		logger.Warn("products table rejected, using built-in catalog", zap.Error(err))
		return repository.NewCatalogMemoryRepository(builtIn)
	}
	return repo, err
}

func setMiddlewares(router *gin.Engine, cfg config.Config, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst).Limit())
}
