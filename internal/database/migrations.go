package database

import (
	"context"
	"database/sql"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS department (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS role (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		salary DECIMAL NOT NULL CHECK (salary >= 0),
		department_id INTEGER NOT NULL,
		FOREIGN KEY (department_id) REFERENCES department(id)
	)`,
	`CREATE TABLE IF NOT EXISTS employee (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role_id INTEGER NOT NULL,
		manager_id INTEGER,
		FOREIGN KEY (role_id) REFERENCES role(id),
		FOREIGN KEY (manager_id) REFERENCES employee(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_role_department ON role(department_id)`,
	`CREATE INDEX IF NOT EXISTS idx_employee_role ON employee(role_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS department (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS role (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		salary DECIMAL NOT NULL CHECK (salary >= 0),
		department_id INTEGER NOT NULL REFERENCES department(id)
	)`,
	`CREATE TABLE IF NOT EXISTS employee (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role_id INTEGER NOT NULL REFERENCES role(id),
		manager_id INTEGER REFERENCES employee(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_role_department ON role(department_id)`,
	`CREATE INDEX IF NOT EXISTS idx_employee_role ON employee(role_id)`,
}

// runMigrations creates the three tables if they do not exist yet
func runMigrations(ctx context.Context, db *sql.DB, driver Driver) error {
	schema := sqliteSchema
	if driver == DriverPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
