package app

import (
	"net/http"
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/metrics"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp menyiapkan infrastruktur dan mendaftarkan seluruh route.
// Fungsi cleanup menutup koneksi database dan redis.
func BuildApp(cfg *config.Config, router *gin.Engine) (func(), error) {
	logger := zap.L().Named("app.api")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}

	infra := Infra{
		Config:  cfg,
		DB:      sqlDB,
		GormDB:  gormDB,
		Redis:   redisClient,
		Metrics: metrics.NewCollector(),
		Logger:  zap.L(),
	}

	if err := RegisterHTTP(router, infra); err != nil {
		cleanup()
		return nil, err
	}

	logger.Info("api ready", zap.String("env", cfg.App.Env))
	return cleanup, nil
}

// RegisterHTTP memasang middleware global, endpoint operasional,
// lalu route modul di bawah /api/v1 yang membutuhkan token.
func RegisterHTTP(router *gin.Engine, infra Infra) error {
	cfg := infra.Config

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
	if cfg.Server.RateLimitRPS > 0 {
		router.Use(middleware.RateLimitByIP(rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst))
	}
	if cfg.Metrics.Enabled {
		router.Use(infra.Metrics.GinMiddleware())
		router.GET(cfg.Metrics.Path, gin.WrapH(infra.Metrics.Handler()))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	api.Use(middleware.ContextLogger(infra.Logger))

	return registerModules(api, infra)
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Idempotency-Key"},
		ExposeHeaders: []string{"X-Request-ID", "Idempotent-Replayed"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
