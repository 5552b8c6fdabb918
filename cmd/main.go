package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/incident_dispatch_system/internal/config"
	"github.com/shenikar/incident_dispatch_system/internal/dispatch"
	v1 "github.com/shenikar/incident_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/incident_dispatch_system/internal/notification"
	"github.com/shenikar/incident_dispatch_system/internal/repository"
	"github.com/shenikar/incident_dispatch_system/internal/scheduler"
	"github.com/shenikar/incident_dispatch_system/internal/service"
	"github.com/shenikar/incident_dispatch_system/pkg/logger"
	redisclient "github.com/shenikar/incident_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ORION Incident Dispatch API
// @version 1.0
// @description This is the ORION incident dispatch engine API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя уведомлений
	notifier := notification.NewRedisNotifier(redisClient)

	// Инициализация и запуск воркера доставки уведомлений
	notificationWorker := notification.NewWorker(redisClient, log, cfg)
	notificationWorker.Start(ctx)

	// Хранилище инцидентов и агентов с начальными данными сессии
	repo := repository.NewMemoryRepository(repository.SeedIncidents(), repository.SeedAgents())

	// Планировщик отложенных вызовов движка
	sched := scheduler.NewTimerScheduler()

	// Генератор синтетических инцидентов
	generator := dispatch.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	// Инициализация движка назначений
	dispatchService := service.NewDispatchService(repo, notifier, sched, generator, log, cfg)

	// Запуск цикла автодетекции инцидентов
	dispatchService.StartAutoDetection(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dispatchService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем цикл автодетекции и все отложенные вызовы движка
	cancel()
	dispatchService.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
