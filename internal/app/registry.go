package app

import (
	"github.com/sameers07/Employee-API/internal/employee"
	"github.com/sameers07/Employee-API/internal/health"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	db *mongo.Database,
	rdb *redis.Client,
	publisher employee.EventPublisher,
) {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(db.Collection(employee.CollectionName))

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, publisher, rdb)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	healthHandler := health.NewHandler(db)

	// --- Routes Registration ---
	api := router.Group("")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
	}

	health.RegisterRoutes(router, healthHandler)
}
