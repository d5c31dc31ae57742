package app

import (
	"database/sql"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/config"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/dashboard"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/employee"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/gateway"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/messaging/kafka"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/middleware"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/payment"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/rbac"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/worksheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	paymentGateway gateway.Gateway,
	cfg *config.Config,
) error {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	worksheetRepo := worksheet.NewRepository(gormDB)
	paymentRepo := payment.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, logger)
	worksheetService := worksheet.NewService(worksheetRepo, employeeService, logger)
	paymentService := payment.NewService(
		db,
		paymentRepo,
		outboxRepo,
		paymentGateway,
		payment.Options{
			RequireGatewayConfirmation: cfg.Payment.RequireGatewayConfirmation,
		},
		logger,
	)
	dashboardService := dashboard.NewService(employeeRepo, paymentRepo, rdb, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	worksheetHandler := worksheet.NewHandler(worksheetService)
	paymentHandler := payment.NewHandlerWithRedis(paymentService, rdb)
	gatewayHandler := gateway.NewHandler(paymentGateway)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// Role lookups behind the auth middleware go through the employee
	// service.
	var principalSource middleware.PrincipalSource = employeeService

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService, principalSource)
		worksheet.RegisterRoutes(api, worksheetHandler, principalSource)
		payment.RegisterRoutes(api, paymentHandler, rbacService, principalSource, rdb)
		gateway.RegisterRoutes(api, gatewayHandler, rbacService, principalSource)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, principalSource)
	}

	return nil
}
