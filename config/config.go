package config

import (
	"fmt"
	"os"
	"time"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxConnectAttempts = 6

// InitDB opens the MySQL connection from environment variables, retrying
// with capped exponential backoff so the app survives the database coming
// up after it.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			getEnv("DB_USER", "root"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "roomapp"),
		)
	}

	var db *gorm.DB
	var err error

	backoff := time.Second
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}

		utils.ErrorLogger.Printf("Database connect attempt %d/%d failed: %v",
			attempt, maxConnectAttempts, err)

		time.Sleep(backoff)
		backoff *= 2
		if backoff > 30*time.Second {
			backoff = 30 * time.Second
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxConnectAttempts, err)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
