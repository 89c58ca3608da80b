package repository

import (
	"fmt"

	"github.com/user/reelfind/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the postgres connection used by the persistent user store.
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// Repositories is the aggregate handed to services and handlers.
type Repositories struct {
	Users UserRepository
}

// NewRepositories wires the persistent user store.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users: NewGormUserRepository(db),
	}
}

// NewMemoryRepositories wires the process-lifetime user store. State is
// lost on restart; this mirrors the reference deployment and is the
// default when no DATABASE_URL is configured.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Users: NewMemoryUserRepository(),
	}
}
