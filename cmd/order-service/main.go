package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/freshlane/bulkstore/docs"
	"github.com/freshlane/bulkstore/internal/config"
	"github.com/freshlane/bulkstore/internal/httpx"
	"github.com/freshlane/bulkstore/internal/identity"
	"github.com/freshlane/bulkstore/internal/metrics"
	"github.com/freshlane/bulkstore/internal/order"
)

func main() {
	cfg := config.Load()
	if cfg.AdminTokenHash == "" {
		log.Fatal("ADMIN_TOKEN_HASH is required")
	}

	keyPEM, err := os.ReadFile(cfg.IdentityKeyFile)
	if err != nil {
		log.Fatalf("identity key: %v", err)
	}
	verifier, err := identity.NewVerifier(keyPEM)
	if err != nil {
		log.Fatalf("identity key: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	repo := order.NewPGRepo(pool)
	resolver := order.NewResolver(order.NewCatalogClient(cfg.CatalogSvcBaseURL))
	svc := order.NewService(repo, resolver)
	m := metrics.NewServerMetrics("order")

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Metrics(m))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/orders", listOrdersHandler(svc))
	r.GET("/orders/:id", getOrderHandler(svc))
	r.POST("/orders", identity.RequireBuyer(verifier), createOrderHandler(svc))
	r.PUT("/orders/:id", identity.RequireAdmin(cfg.AdminTokenHash), updateOrderStatusHandler(svc))
	r.DELETE("/orders/:id", identity.Authenticate(verifier, cfg.AdminTokenHash), deleteOrderHandler(svc))

	log.Printf("order-service listening on %s", cfg.OrderSvcAddr)
	log.Fatal(r.Run(cfg.OrderSvcAddr))
}
