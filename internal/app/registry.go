package app

import (
	"database/sql"
	"go-employee-form/internal/employee"
	"go-employee-form/internal/employeeform"
	"go-employee-form/internal/messaging/kafka"

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
	cfg ServerConfig,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	validator := employeeform.NewValidator(cfg.AddressPolicy)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, validator, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
	}
}
