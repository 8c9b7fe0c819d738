// Package testutil holds helpers shared by package tests
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/roster/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema and
// returns a Repository over it. The repository is closed on test cleanup.
func SetupTestDB(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.InitDB(context.Background(), database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	repo := database.NewRepository(db, database.DriverSQLite)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// SeedDepartment inserts a department or fails the test
func SeedDepartment(t *testing.T, repo *database.Repository, name string) int {
	t.Helper()

	d, err := repo.CreateDepartment(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to seed department %s: %v", name, err)
	}
	return d.ID
}

// SeedRole inserts a role or fails the test
func SeedRole(t *testing.T, repo *database.Repository, title string, salary float64, departmentID int) int {
	t.Helper()

	r, err := repo.CreateRole(context.Background(), title, salary, departmentID)
	if err != nil {
		t.Fatalf("Failed to seed role %s: %v", title, err)
	}
	return r.ID
}

// SeedEmployee inserts an employee or fails the test
func SeedEmployee(t *testing.T, repo *database.Repository, first, last string, roleID int, managerID *int) int {
	t.Helper()

	e, err := repo.CreateEmployee(context.Background(), first, last, roleID, managerID)
	if err != nil {
		t.Fatalf("Failed to seed employee %s %s: %v", first, last, err)
	}
	return e.ID
}
