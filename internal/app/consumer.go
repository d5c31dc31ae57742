package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/config"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/dashboard"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/employee"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/events"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/messaging/kafka/consumer"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/payment"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupID = "ems-dashboard"

// RunConsumer keeps the cached dashboard summary coherent: any employee
// registration or payment approval drops the cache entry.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

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
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	employeeRepo := employee.NewRepository(gormDB)
	paymentRepo := payment.NewRepository(gormDB)
	dashboardService := dashboard.NewService(employeeRepo, paymentRepo, redisClient, zap.L())

	paymentReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.PaymentApprovedTopic,
		GroupID:        consumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer paymentReader.Close()

	employeeReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        consumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer employeeReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePaymentApproved(ctx, paymentReader, dashboardService, logger)
	go consumer.ConsumeEmployeeCreated(ctx, employeeReader, dashboardService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
