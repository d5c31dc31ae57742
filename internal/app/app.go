package app

import (
	"github.com/rifatalam240/Employee-Management-System-Server/internal/config"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/gateway"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg *config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := migrate(gormDB, sqlDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}

	paymentGateway := gateway.NewStripeGateway(
		cfg.Stripe.SecretKey,
		cfg.Stripe.Currency,
		zap.L(),
	)

	return registerModules(router, sqlDB, gormDB, redisClient, paymentGateway, cfg)
}
