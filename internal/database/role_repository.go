package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
)

// RoleRepo handles all role-related database operations.
type RoleRepo struct {
	db     *sql.DB
	driver Driver
}

// Create inserts a role under the given department
func (r *RoleRepo) Create(ctx context.Context, title string, salary float64, departmentID int) (*models.Role, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		r.driver.rebind(`INSERT INTO role (title, salary, department_id) VALUES (?, ?, ?) RETURNING id`),
		title, salary, departmentID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("inserting role: %w", err)
	}

	return &models.Role{
		ID:           id,
		Title:        title,
		Salary:       salary,
		DepartmentID: departmentID,
	}, nil
}

// GetAll retrieves every role without joins, for building choice lists
func (r *RoleRepo) GetAll(ctx context.Context) ([]*models.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, salary, department_id FROM role ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying roles: %w", err)
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Title, &role.Salary, &role.DepartmentID); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

// GetViews retrieves every role joined with its department name
func (r *RoleRepo) GetViews(ctx context.Context) ([]*models.RoleView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT role.id, role.title, department.name, role.salary
		FROM role
		JOIN department ON role.department_id = department.id
		ORDER BY role.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying role views: %w", err)
	}
	defer rows.Close()

	var views []*models.RoleView
	for rows.Next() {
		v := &models.RoleView{}
		if err := rows.Scan(&v.ID, &v.Title, &v.Department, &v.Salary); err != nil {
			return nil, fmt.Errorf("scanning role view: %w", err)
		}
		views = append(views, v)
	}

	return views, rows.Err()
}
