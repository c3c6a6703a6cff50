package main

import (
	"time"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/app"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/bootstrap"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/config"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/logger"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogFile)
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()

	r := gin.New()
	r.Use(gin.Recovery())

	db, err := app.BuildApp(r, cfg, log)
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		db,
	)
}
