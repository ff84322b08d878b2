package main

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/awf1337/instantly/config"
	"github.com/awf1337/instantly/internal/assistant"
	"github.com/awf1337/instantly/internal/handler"
	"github.com/awf1337/instantly/internal/httpserver"
	"github.com/awf1337/instantly/internal/llm"
	"github.com/awf1337/instantly/internal/repository"
	"github.com/awf1337/instantly/internal/service"
	"github.com/awf1337/instantly/pkg/db"
	"github.com/awf1337/instantly/pkg/mq"
)

func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis is optional: without it classification simply isn't cached.
	var classifyCache *assistant.ClassifyCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ttl := time.Duration(cfg.Assistant.ClassifyCacheTTLSeconds) * time.Second
		classifyCache = assistant.NewClassifyCache(rdb, ttl, logger)
	}

	// RabbitMQ is optional: without it email.created events aren't published.
	var publisher *mq.Publisher
	var eventPublisher service.EventPublisher
	if cfg.MQ.URL != "" {
		publisher, err = mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			logger.Fatal("failed to init publisher", zap.Error(err))
		}
		defer publisher.Close()
		eventPublisher = publisher
	}

	emailRepo := repository.NewEmailRepository(dbConn)
	llmClient := llm.NewClient(cfg.OpenAI)

	emailService := service.NewEmailService(emailRepo, eventPublisher, cfg.Assistant.Owner, logger)
	composeService := service.NewComposeService(llmClient, classifyCache, logger)

	emailHandler := handler.NewEmailHandler(emailService, logger)
	aiHandler := handler.NewAIHandler(composeService, logger)

	router := httpserver.NewRouter(emailHandler, aiHandler, dbConn, publisher)

	logger.Info("starting API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
