package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tender-service/internal/auth"
	"tender-service/internal/config"
	"tender-service/internal/files"
	"tender-service/internal/portal"
	"tender-service/internal/repository"
	"tender-service/internal/scheduler"
	"tender-service/internal/server"
	"tender-service/internal/storage"
	"tender-service/internal/tenders"
	"tender-service/internal/users"
	"tender-service/utils"
)

func main() {
	cfg := config.Load()

	db, err := repository.Open(cfg.DatabaseDSN)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{"error": err.Error()})
	}
	store := repository.NewStore(db)

	resolver, err := auth.NewRedisResolver(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		utils.Fatal("failed to connect to redis", map[string]any{"error": err.Error()})
	}

	blobs, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		utils.Fatal("failed to prepare upload directory", map[string]any{"error": err.Error()})
	}

	portalClient := portal.NewHTTPClient(cfg.PortalBaseURL)

	tenderService := tenders.NewService(store, portalClient, blobs, cfg.ReconcilePause)
	userService := users.NewService(store, users.BcryptHasher{})
	fileService := files.NewService(store, blobs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go scheduler.Run(ctx, tenderService, cfg.ReconcileEvery)

	router := server.SetupRouter(store, resolver, tenderService, userService, fileService)

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting tender server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}
