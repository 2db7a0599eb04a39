package app

import (
	"log"
	"os"

	"github.com/sameers07/Employee-API/internal/employee"
	"github.com/sameers07/Employee-API/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	mongoURL := os.Getenv("MONGODB_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB_NAME")
	if dbName == "" {
		dbName = "assessment_db"
	}

	db, err := connection.ConnectMongoWithRetry(mongoURL, dbName, 5)
	if err != nil {
		return err
	}

	// Serving must not start before the unique employee_id index exists
	if err := connection.EnsureIndexes(db, employee.CollectionName, employee.EmployeeIndexes); err != nil {
		return err
	}

	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	} else {
		log.Println("REDIS_ADDR not set, avg-salary cache disabled")
	}

	publisher := employee.NewNoopEventPublisher()
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Balancer: &kafka.LeastBytes{},
		}
		publisher = employee.NewKafkaEventPublisher(writer)
		log.Println("✅ Kafka event publisher enabled")
	} else {
		log.Println("KAFKA_BROKER not set, employee events disabled")
	}

	// Register Modules & Routes
	registerModules(router, db, redisClient, publisher)

	return nil
}
