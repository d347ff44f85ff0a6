package config

import (
	"os"

	"little-lemon-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret signs access tokens — read from env or fallback.
var JWTSecret []byte

type Config struct {
	Port    string
	GinMode string
	DBPath  string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the process environment, preferring a local .env file when one
// exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "little_lemon_super_secret_2024"))
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		DBPath:  getEnv("DB_PATH", "little_lemon.db"),
	}
}

// InitDB opens the SQLite database and migrates all models.
func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	logrus.Info("database connected and migrated")
	return db
}
