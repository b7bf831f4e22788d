package main

import (
	"log"

	"gestao_backoffice/internal/adapter/http/routes"
	"gestao_backoffice/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão Backoffice API
// @version         1.0
// @description     Approval workflows (contracts, overtime, account suspension) with audit trail.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
