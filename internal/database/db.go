// Package database handles the connection to the company store and all queries against it
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// InitDB opens the store for the given driver, verifies the connection and
// bootstraps the schema. The returned handle is limited to a single connection.
func InitDB(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	if err := driver.Validate(); err != nil {
		return nil, err
	}

	if driver == DriverSQLite && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(driver.sqlName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One operator, one in-flight statement
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if driver == DriverSQLite {
		// Foreign keys are off by default in SQLite
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			slog.Error("Failed to enable foreign keys", "error", err)
			closeQuietly(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db, driver); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
