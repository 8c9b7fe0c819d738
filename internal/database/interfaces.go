package database

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
)

// DataStore defines the unified interface for all data operations needed by the menu.
// Consumers depend on this interface so tests can substitute a fake store.
type DataStore interface {
	// Departments
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)

	// Roles
	CreateRole(ctx context.Context, title string, salary float64, departmentID int) (*models.Role, error)
	GetAllRoles(ctx context.Context) ([]*models.Role, error)
	GetRoleViews(ctx context.Context) ([]*models.RoleView, error)

	// Employees
	CreateEmployee(ctx context.Context, firstName, lastName string, roleID int, managerID *int) (*models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int) (*models.Employee, error)
	GetEmployeeViews(ctx context.Context) ([]*models.EmployeeView, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int) error

	// Close releases the store connection
	Close() error
}

var _ DataStore = (*Repository)(nil)
