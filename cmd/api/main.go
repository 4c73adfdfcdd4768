package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"counselling-site/internal/config"
	apihttp "counselling-site/internal/http"
	"counselling-site/internal/llm"
	"counselling-site/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	site, err := config.LoadSite(cfg.SiteConfigPath)
	if err != nil {
		logger.Fatal("site config", zap.Error(err))
	}

	chatProvider, err := llm.NewProvider(cfg.ChatProvider, cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel, logger)
	if err != nil {
		logger.Fatal("chat provider", zap.Error(err))
	}
	if chatProvider == nil {
		logger.Warn("no chat credential configured, chat runs in demo mode")
	}

	blogProvider, err := llm.NewProvider(cfg.BlogProvider, cfg.BlogBaseURL, cfg.BlogAPIKey, cfg.BlogModel, logger)
	if err != nil {
		logger.Fatal("blog provider", zap.Error(err))
	}
	if blogProvider == nil {
		logger.Warn("no blog credential configured, blog generation runs in demo mode")
	}

	chatSvc := service.NewChatService(chatProvider, site, logger)
	blogSvc := service.NewBlogService(blogProvider, site, logger)

	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	blogHandler := apihttp.NewBlogHandler(logger, blogSvc)
	router := apihttp.NewRouter(logger, chatHandler, blogHandler, cfg.AdminAPIToken, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
