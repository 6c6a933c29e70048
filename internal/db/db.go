package db

import (
	"fmt"
	"log"

	"doenerkiosk/internal/ingest"
	"doenerkiosk/internal/menu"
	"doenerkiosk/internal/order"
	"doenerkiosk/internal/settings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database: postgres when databaseURL is set, otherwise
// the single-file sqlite database at path. The schema is migrated and the
// settings singleton seeded before the connection is handed out.
func Connect(databaseURL, path string) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	if databaseURL != "" {
		conn, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		conn, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := initSchema(conn); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Println("Database connection established")
	return conn, nil
}

func initSchema(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&menu.Item{},
		&order.Order{},
		&order.Item{},
		&settings.Settings{},
		&ingest.Job{},
	)
	if err != nil {
		return err
	}

	return seedSettings(conn)
}

// seedSettings guarantees exactly one settings row exists after startup.
func seedSettings(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&settings.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return conn.Create(&settings.Settings{OrderingEnabled: true}).Error
}
