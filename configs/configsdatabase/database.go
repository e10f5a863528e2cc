package configsdatabase

import (
	"fmt"
	"time"

	"flashdeck.app/configs"
	"flashdeck.app/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the PostgreSQL connection and configures the pool.
// DATABASE_URL wins when set, otherwise the DSN is assembled from DB_* variables.
func InitDB() {
	dsn := configs.GetEnv("DATABASE_URL", "")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			configs.GetEnv("DB_HOST", "localhost"),
			configs.GetEnv("DB_PORT", "5432"),
			configs.GetEnv("DB_USER", "postgres"),
			configs.GetEnv("DB_PASSWORD", ""),
			configs.GetEnv("DB_NAME", "flashdeck"),
			configs.GetEnv("DB_SSLMODE", "disable"),
		)
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("Database connection failed", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Database handle could not be acquired", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Info("Database connection established")
}

// GetDB returns the shared connection. InitDB must have run.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB called before InitDB")
	}
	return db
}

// CloseDB releases the underlying connection pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Database handle could not be acquired for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Database connection could not be closed", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database connection closed")
}
