package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/config"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/middleware"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/connection"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp wires infrastructure, the middleware chain and every module's
// routes onto the router. It returns the database handle so the shutdown
// path can close the pool.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := connection.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	if connection.Ping(db) == nil {
		if err := connection.Provision(db); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("skipping schema provisioning, store unreachable")
	}

	rdb := connectRedis(cfg.RedisAddr, logger)

	// Middleware order: CORS first so even errored responses carry the
	// headers, then compression, then request plumbing.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.BodyLimit(cfg.BodyLimitBytes))

	if cfg.StaticDir != "" {
		router.Static("/static", cfg.StaticDir)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Catch-all: API paths get the JSON envelope, everything else a plain
	// message.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Error(c, http.StatusNotFound, "Route not found", nil)
			return
		}
		c.String(http.StatusNotFound, "Not Found")
	})

	registerModules(router, db, rdb)

	return db, nil
}

// connectRedis is best-effort: the cache is an optimization, so a missing or
// unreachable redis only disables it.
func connectRedis(addr string, logger *zap.Logger) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, caching disabled", zap.String("addr", addr), zap.Error(err))
		_ = rdb.Close()
		return nil
	}

	logger.Info("redis connection established", zap.String("addr", addr))
	return rdb
}
