package routes

import (
	"forro_orcamento/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
	PathBudgets = "/budgets"
	PathAdvice  = "/advice"
)

func addCatalogRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/subcategories", budgetHandler.SubCategories)
		catalog.GET("/colors", budgetHandler.Colors)
		catalog.GET("/products", budgetHandler.Products)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, checkoutHandler *handlers.CheckoutHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.Estimate)
		budgets.POST("/stream", budgetHandler.Stream)
		budgets.POST("/pdf", budgetHandler.PDF)
		budgets.POST("/xlsx", budgetHandler.XLSX)
		budgets.POST("/import", budgetHandler.Import)
		budgets.POST("/checkout", checkoutHandler.Checkout)
	}
}

func addAdviceRoutes(rg *gin.RouterGroup, adviceHandler *handlers.AdviceHandler) {
	rg.POST(PathAdvice, adviceHandler.Advice)
}
