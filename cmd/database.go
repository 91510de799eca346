package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"checkout/internal/adapters/out/postgres/sessionrepo"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CreateDatabaseIfNotExists connects to the maintenance database and creates
// DBName when it is missing.
func CreateDatabaseIfNotExists(ctx context.Context, config Config) error {
	db, err := sql.Open("postgres", config.dsn("postgres"))
	if err != nil {
		return fmt.Errorf("open maintenance database: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", config.DBName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %s: %w", config.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(config.DBName)); err != nil {
		return fmt.Errorf("create database %s: %w", config.DBName, err)
	}
	return nil
}

// OpenDatabase opens the gorm connection to DBName.
func OpenDatabase(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the checkout_sessions table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&sessionrepo.SessionDTO{})
}
