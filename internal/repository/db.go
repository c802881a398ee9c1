package repository

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database connection. postgres:// URLs use the Postgres
// driver; anything else is treated as a SQLite path (":memory:" works too),
// which the loader and local runs rely on.
func InitDB(databaseURL string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dial = postgres.Open(databaseURL)
	} else {
		dial = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// Repositories bundles the database handle with the store implementation
// handed to the services.
type Repositories struct {
	DB    *gorm.DB
	Store Store
}

// NewRepositories creates the repository set over a live connection.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:    db,
		Store: NewDBStore(db),
	}
}

// DBStore is the GORM-backed Store implementation. Its per-entity methods
// live in movie.go, character.go, conversation.go and line.go.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore wraps a GORM handle as a Store.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}
