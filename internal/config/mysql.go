package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is set once the mysql backend is opened.
var DB *gorm.DB

// InitDB opens the MySQL connection used by the mysql post store.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	DB = db
	Logger.Info("Database connected")
	return db, nil
}

// CloseDB closes the underlying *sql.DB if one was opened.
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		Logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		Logger.Error("Error closing database connection", zap.Error(err))
	}
}
