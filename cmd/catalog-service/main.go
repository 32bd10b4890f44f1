package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/freshlane/bulkstore/docs"
	"github.com/freshlane/bulkstore/internal/catalog"
	"github.com/freshlane/bulkstore/internal/config"
	"github.com/freshlane/bulkstore/internal/httpx"
	"github.com/freshlane/bulkstore/internal/identity"
	"github.com/freshlane/bulkstore/internal/metrics"
)

func main() {
	cfg := config.Load()
	if cfg.AdminTokenHash == "" {
		log.Fatal("ADMIN_TOKEN_HASH is required")
	}

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	repo := catalog.NewPGRepo(pool)
	m := metrics.NewServerMetrics("catalog")

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Metrics(m))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	admin := identity.RequireAdmin(cfg.AdminTokenHash)

	r.GET("/products", listProductsHandler(repo))
	r.GET("/products/:id", getProductHandler(repo))
	r.POST("/products", admin, createProductHandler(repo))
	r.PUT("/products/:id", admin, updateProductHandler(repo))
	r.DELETE("/products/:id", admin, deleteProductHandler(repo))

	log.Printf("catalog-service listening on %s", cfg.CatalogSvcAddr)
	log.Fatal(r.Run(cfg.CatalogSvcAddr))
}
