package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything read from the environment at startup
type Config struct {
	Port    string
	DBPath  string
	GinMode string
}

// Load reads .env (when present) and the environment. Every field has
// a working default so the demo runs with no setup at all.
func Load(log *logrus.Logger) Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment defaults")
	}
	return Config{
		Port:    getEnv("PORT", "8080"),
		DBPath:  getEnv("DB_PATH", "concession_stand.db"),
		GinMode: getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewLogger builds the service logger
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// OpenDB opens the sqlite database backing the local key-value store
func OpenDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
