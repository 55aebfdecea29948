package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/EkeminiThompson/ecommerce/models"
)

var DB *gorm.DB

// Connection opens the entity store and migrates the schema. Under
// APP_ENV=test an in-memory sqlite database is used instead of Postgres,
// the same switch the service makes for its test environment.
func Connection() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded")
	}

	var (
		db  *gorm.DB
		err error
	)
	if os.Getenv("APP_ENV") == "test" {
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	} else {
		dbHost := os.Getenv("DB_HOST")
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPass := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", dbUser, dbPass, dbHost, dbPort, dbName)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	DB = db
	slog.Info("database connected")
}

// Disconnect closes the underlying connection pool.
func Disconnect() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}
