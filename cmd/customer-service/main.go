package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhoini/customer-service/config"
	"github.com/Dhoini/customer-service/internal/api/rest"
	"github.com/Dhoini/customer-service/internal/api/rest/handlers"
	"github.com/Dhoini/customer-service/internal/kafka"
	"github.com/Dhoini/customer-service/internal/kafka/producer"
	"github.com/Dhoini/customer-service/internal/metrics"
	"github.com/Dhoini/customer-service/internal/repository/postgres"
	"github.com/Dhoini/customer-service/internal/service"
	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

var log *logger.Logger

func init() {
	// Загружаем переменные окружения; отсутствие .env файла не ошибка
	_ = godotenv.Load()

	log = logger.New(logger.ParseLevel(os.Getenv("LOG_LEVEL")))
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Prometheus
	promRegistry := prometheus.NewRegistry()
	customerMetrics := metrics.NewCustomerMetrics(promRegistry, log)

	// Подключение к базе данных
	dbPool, err := postgres.NewConnection(ctx, cfg.Database.GetDSN(), log)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repo := postgres.NewPostgresCustomerRepository(dbPool, log)

	// Инициализация Kafka продюсера. Недоступность брокеров не мешает
	// сервису работать — события просто не публикуются.
	customerProducer := producer.NewNopCustomerProducer()
	if cfg.Kafka.Enabled {
		kafkaConfig := kafka.NewConfig(cfg.Kafka.Brokers)
		saramaConfig := kafka.NewSaramaConfig(kafkaConfig, log)

		syncProducer, err := sarama.NewSyncProducer(kafkaConfig.Brokers, saramaConfig)
		if err != nil {
			log.Error("Failed to create Kafka producer, continuing without events: %v", err)
		} else {
			customerProducer = producer.NewKafkaCustomerProducer(syncProducer, log)
		}
	}
	defer func() {
		if err := customerProducer.Close(); err != nil {
			log.Error("Error closing Kafka producer: %v", err)
		}
	}()

	// Сборка сервиса и HTTP слоя
	customerService := service.NewCustomerService(repo, customerProducer, customerMetrics, log)
	customerHandler := handlers.NewCustomerHandler(customerService, log)

	router := rest.SetupRouter(customerHandler, promRegistry, customerMetrics, log)
	server := rest.NewServer(router, cfg, log)

	// Запуск сервера в отдельной горутине
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed: %v", err)
		}
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error: %v", err)
	}

	log.Info("Server stopped")
}
