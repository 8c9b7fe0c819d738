package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
)

// EmployeeRepo handles all employee-related database operations.
type EmployeeRepo struct {
	db     *sql.DB
	driver Driver
}

// Create inserts an employee. A nil managerID is stored as NULL.
func (r *EmployeeRepo) Create(ctx context.Context, firstName, lastName string, roleID int, managerID *int) (*models.Employee, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		r.driver.rebind(`INSERT INTO employee (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?) RETURNING id`),
		firstName, lastName, roleID, intPtrToNull(managerID),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("inserting employee: %w", err)
	}

	return &models.Employee{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    roleID,
		ManagerID: managerID,
	}, nil
}

// GetAll retrieves every employee without joins, for building choice lists
func (r *EmployeeRepo) GetAll(ctx context.Context) ([]*models.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, role_id, manager_id FROM employee ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// GetByID retrieves a single employee
func (r *EmployeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		r.driver.rebind(`SELECT id, first_name, last_name, role_id, manager_id FROM employee WHERE id = ?`),
		id)

	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	return e, err
}

// GetViews retrieves every employee joined with role, department and manager name
func (r *EmployeeRepo) GetViews(ctx context.Context) ([]*models.EmployeeView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT employee.id, employee.first_name, employee.last_name, role.title,
		       department.name, role.salary,
		       manager.first_name || ' ' || manager.last_name
		FROM employee
		JOIN role ON employee.role_id = role.id
		JOIN department ON role.department_id = department.id
		LEFT JOIN employee manager ON employee.manager_id = manager.id
		ORDER BY employee.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying employee views: %w", err)
	}
	defer rows.Close()

	var views []*models.EmployeeView
	for rows.Next() {
		v := &models.EmployeeView{}
		var manager sql.NullString
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Title, &v.Department, &v.Salary, &manager); err != nil {
			return nil, fmt.Errorf("scanning employee view: %w", err)
		}
		v.Manager = nullStringToPtr(manager)
		views = append(views, v)
	}

	return views, rows.Err()
}

// UpdateRole reassigns an employee's role, leaving every other column untouched
func (r *EmployeeRepo) UpdateRole(ctx context.Context, employeeID, roleID int) error {
	result, err := r.db.ExecContext(ctx,
		r.driver.rebind(`UPDATE employee SET role_id = ? WHERE id = ?`),
		roleID, employeeID)
	if err != nil {
		return fmt.Errorf("updating employee role: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating employee role: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	e := &models.Employee{}
	var managerID sql.NullInt64
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.RoleID, &managerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}
	e.ManagerID = nullInt64ToPtr(managerID)
	return e, nil
}
