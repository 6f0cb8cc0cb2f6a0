package db

import (
	"fmt"

	"shop/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	// DATABASE_URL があれば最優先で使う
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
		cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
