package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shipflow/internal/cancellation"
	"shipflow/internal/carrier"
	"shipflow/internal/config"
	"shipflow/internal/infrastructure/logger"
	"shipflow/internal/infrastructure/redisdb"
	"shipflow/internal/server"
	"shipflow/internal/shipment"
	"shipflow/internal/store"
)

func main() {
	// Local development convenience; real deployments set the env.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	redisClient, err := redisdb.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer redisClient.Close()
	zapLogger.Info("store connected", zap.String("addr", cfg.Redis.Addr))

	pathStore := store.NewRedisStore(redisClient)

	var carrierClient carrier.Client
	if cfg.Mode == config.ModeLive {
		carrierClient = carrier.NewHTTPClient(cfg.Carrier.BaseURL, cfg.Carrier.Email, cfg.Carrier.Password, zapLogger)
	} else {
		carrierClient = carrier.NewTestClient()
	}
	zapLogger.Info("carrier client ready", zap.String("mode", cfg.Mode))

	shipmentCtrl := shipment.NewModule(carrierClient, pathStore, cfg, zapLogger)
	cancelCtrl := cancellation.NewModule(carrierClient, pathStore, zapLogger)

	router := server.NewRouter(shipmentCtrl, cancelCtrl, cfg.Mode, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
