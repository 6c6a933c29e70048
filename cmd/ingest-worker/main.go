package main

import (
	"context"
	"log"
	"time"

	"doenerkiosk/internal/config"
	"doenerkiosk/internal/db"
	"doenerkiosk/internal/ingest"
	"doenerkiosk/internal/menu"
	"doenerkiosk/internal/storage"
)

// Standalone ingestion worker: polls for uploaded menu PDFs and parses them
// into menu items, independently of the HTTP server process.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatal("database:", err)
	}

	var store storage.Store
	if cfg.StorageBackend == "s3" {
		store, err = storage.NewS3Store(context.Background(), storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
		})
	} else {
		store, err = storage.NewLocalStore(cfg.UploadDir)
	}
	if err != nil {
		log.Fatal("storage:", err)
	}

	service := ingest.NewService(
		ingest.NewGormRepository(conn),
		store,
		menu.NewGormRepository(conn),
		cfg.OCRLang,
	)

	log.Println("Processing menu uploads every 2 seconds. Press Ctrl+C to stop.")
	service.Run(context.Background(), 2*time.Second)
}
