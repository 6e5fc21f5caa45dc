package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/app/demoapp"
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/config"
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/infra/logger"
)

func main() {
	cfgPath := os.Getenv("APP_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Console)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := demoapp.New(cfg, log, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal("create demo app", zap.Error(err))
	}

	if err := app.Run(ctx); err != nil {
		log.Fatal("demo app failed", zap.Error(err))
	}
}
