package main

import (
	"time"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/app"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/bootstrap"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/config"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()
	r := gin.Default()

	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Server.Port,
			ReadTimeout:     time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout:    time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:     time.Duration(cfg.Server.IdleTimeout) * time.Second,
			ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
		},
		auditLogger,
	)
}
