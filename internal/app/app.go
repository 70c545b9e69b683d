package app

import (
	"go-employee-form/internal/employee"
	"go-employee-form/internal/messaging/kafka"
	"go-employee-form/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema and registers
// the employee routes on router.
func BuildApp(router *gin.Engine, cfg ServerConfig) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := gormDB.AutoMigrate(&employee.Employee{}); err != nil {
		return err
	}
	if err := gormDB.Exec(kafka.OutboxSchema).Error; err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, employee list cache disabled")
	}

	registerModules(router, sqlDB, gormDB, rdb, cfg, logger)
	return nil
}
