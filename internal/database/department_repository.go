package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
)

// DepartmentRepo handles all department-related database operations.
type DepartmentRepo struct {
	db     *sql.DB
	driver Driver
}

// Create inserts a department and returns it with its assigned id
func (r *DepartmentRepo) Create(ctx context.Context, name string) (*models.Department, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		r.driver.rebind(`INSERT INTO department (name) VALUES (?) RETURNING id`),
		name,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("inserting department: %w", err)
	}

	return &models.Department{ID: id, Name: name}, nil
}

// GetAll retrieves every department ordered by id
func (r *DepartmentRepo) GetAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM department ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scanning department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}
