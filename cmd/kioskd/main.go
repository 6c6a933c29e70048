package main

import (
	"context"
	"log"
	"time"

	"doenerkiosk/internal/auth"
	"doenerkiosk/internal/config"
	"doenerkiosk/internal/db"
	"doenerkiosk/internal/ingest"
	"doenerkiosk/internal/menu"
	"doenerkiosk/internal/order"
	"doenerkiosk/internal/router"
	"doenerkiosk/internal/settings"
	"doenerkiosk/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatal("database:", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal("storage:", err)
	}

	// Repositories
	menuRepo := menu.NewGormRepository(conn)
	orderRepo := order.NewGormRepository(conn)
	settingsRepo := settings.NewGormRepository(conn)
	ingestRepo := ingest.NewGormRepository(conn)

	// Services
	menuService := menu.NewService(menuRepo)
	settingsService := settings.NewService(settingsRepo)
	orderService := order.NewService(orderRepo, menuRepo, settingsService)
	authService := auth.NewService(cfg.AdminPassword, cfg.AdminPasswordHash)
	ingestService := ingest.NewService(ingestRepo, store, menuRepo, cfg.OCRLang)

	// Ingestion worker runs in-process; cmd/ingest-worker is the
	// standalone alternative.
	go ingestService.Run(context.Background(), 2*time.Second)

	r := router.New(router.Deps{
		SessionSecret:   cfg.SessionSecret,
		Auth:            auth.NewHandler(authService, cfg.SessionSecret),
		Menu:            menuService,
		Orders:          orderService,
		Settings:        settingsService,
		Ingest:          ingest.NewHandler(ingestService),
		MenuHandler:     menu.NewHandler(menuService),
		OrderHandler:    order.NewHandler(orderService),
		SettingsHandler: settings.NewHandler(settingsService),
	})

	log.Printf("Kiosk running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageBackend == "s3" {
		return storage.NewS3Store(context.Background(), storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
		})
	}
	return storage.NewLocalStore(cfg.UploadDir)
}
