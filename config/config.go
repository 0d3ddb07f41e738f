package config

import (
	"log"
	"os"

	"resto-api/identity"
	"resto-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the process-wide settings, read once at startup.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
}

func Load() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "resto.db"),
		JWTSecret: getEnv("JWT_SECRET", "resto_api_super_secret_2024"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the SQLite store and migrates every collection.
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&identity.Account{},
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
		&models.Commande{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
