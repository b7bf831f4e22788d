package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "gestao_backoffice/docs" // generated by swag init
	"gestao_backoffice/internal/adapter/http/handlers"
	"gestao_backoffice/internal/adapter/http/middleware"
	"gestao_backoffice/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT or SIGTERM.
func Run(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: NewRouter(cfg, deps),
	}

	go func() {
		log.Printf("[http][server] listening addr=%s driver=%s auth=%t", srv.Addr, cfg.PersistenceDriver, cfg.AuthEnabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[http][server] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http][server] forced shutdown: %v", err)
	}
	deps.Close()
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg config.Config, deps *Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	contractHandler := handlers.NewContractHandler(deps.Contracts, cfg.Location)
	overtimeHandler := handlers.NewOvertimeHandler(deps.Overtime, cfg.Location)
	accountHandler := handlers.NewAccountHandler(deps.Accounts)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("")
	if cfg.AuthEnabled() {
		api.Use(middleware.RequireActor(cfg.JWTSecret))
	}
	addBackofficeRoutes(api, contractHandler, overtimeHandler, accountHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
