package main

import (
	"context"
	_ "mercadopago_sync/docs"
	"mercadopago_sync/internal/adapter/http/routes"
	"mercadopago_sync/internal/config"
	"mercadopago_sync/internal/infrastructure/logging"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Mercado Pago Sync API
// @version         1.0
// @description     Mirrors Mercado Pago payment statuses onto host payments stored in DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init("mercadopago-sync", cfg.LogLevel, cfg.AppEnv)
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}
