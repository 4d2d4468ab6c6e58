package main

import (
	_ "forro_orcamento/docs"
	"forro_orcamento/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Forro Orcamento API
// @version         1.0
// @description     PVC suspended ceiling budgets: catalog, estimates, documents, installation advice and checkout.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
