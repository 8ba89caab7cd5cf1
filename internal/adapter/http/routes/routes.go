package routes

import (
	"context"
	"errors"
	"fmt"
	_ "mercadopago_sync/docs"
	"mercadopago_sync/internal/adapter/cache"
	"mercadopago_sync/internal/adapter/http/handlers"
	"mercadopago_sync/internal/adapter/persistence/repository"
	"mercadopago_sync/internal/config"
	rediscache "mercadopago_sync/internal/infrastructure/cache"
	"mercadopago_sync/internal/infrastructure/database"
	"mercadopago_sync/internal/infrastructure/metrics"
	"mercadopago_sync/internal/infrastructure/payments"
	"mercadopago_sync/internal/usecase"
	"mercadopago_sync/internal/usecase/interfaces"
	"mercadopago_sync/internal/usecase/outcome"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases and metrics registry served by the router.
type Dependencies struct {
	PaymentSync usecase.IPaymentSyncUseCase
	Customers   usecase.ICustomerUseCase
	Banks       usecase.IBankListUseCase
	Registry    *prometheus.Registry
}

// Run wires the service from cfg and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      NewRouter(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("[http] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("[http] server stopped")
	return nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, handlers.NewPaymentSyncHandler(deps.PaymentSync))
	addCustomerRoutes(v1, handlers.NewCustomerHandler(deps.Customers))
	addBankRoutes(v1, handlers.NewBankListHandler(deps.Banks))
	return router
}

func buildDependencies(ctx context.Context, cfg *config.Config) (Dependencies, error) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics()
	if err := m.Register(reg); err != nil {
		return Dependencies{}, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return Dependencies{}, fmt.Errorf("failed to create dynamodb client: %w", err)
	}
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Sync.PaymentModel)

	redisClient, err := rediscache.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("[http] redis unavailable at startup; bank list and event publishing will fail until it is reachable")
	}
	bankCache := cache.NewBankListRedisCache(redisClient, cfg.BankList.CacheKey)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock)
	if err != nil {
		log.Warn().Err(err).Msg("[http] Mercado Pago gateway not configured")
	} else {
		gateway = mpGateway
	}

	outcomeDeps := outcome.Dependencies{Publisher: redisClient, Channel: cfg.Sync.EventsChannel}
	onPaid, err := outcome.Resolve(cfg.Sync.PaidUseCase, outcomeDeps)
	if err != nil {
		return Dependencies{}, fmt.Errorf("PAID_USECASE: %w", err)
	}
	onRejected, err := outcome.Resolve(cfg.Sync.RejectedUseCase, outcomeDeps)
	if err != nil {
		return Dependencies{}, fmt.Errorf("REJECTED_USECASE: %w", err)
	}

	return Dependencies{
		PaymentSync: usecase.NewPaymentSyncUseCase(paymentRepo, gateway, onPaid, onRejected, usecase.PaymentSyncOptions{
			ReferencePrefix:       cfg.Sync.ReferencePrefix,
			InvalidResponsePolicy: cfg.Sync.InvalidResponsePolicy,
		}, m),
		Customers: usecase.NewCustomerUseCase(gateway, cfg.Customer.Retries, m),
		Banks:     usecase.NewBankListUseCase(gateway, bankCache, m),
		Registry:  reg,
	}, nil
}
