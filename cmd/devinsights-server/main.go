package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/vukan322/devinsights/internal/analyze"
	"github.com/vukan322/devinsights/internal/config"
	"github.com/vukan322/devinsights/internal/github"
	"github.com/vukan322/devinsights/internal/server"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	var cache github.Cache = github.NewMemoryCache()
	if cfg.RedisURL != "" {
		redisCache, err := github.NewRedisCache(cfg.RedisURL)
		if err != nil {
			logger.Fatalf("redis connection failed: %v", err)
		}
		cache = redisCache
		logger.Info("using redis response cache")
	}

	client := github.New(cfg.GitHubToken, cache)
	analyzer := analyze.New(client, logger)

	e := echo.New()
	e.HideBanner = true
	server.NewHandler(analyzer, logger).Register(e)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("server stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("shutdown failed: %v", err)
	}
	logger.Info("server exited")
}
