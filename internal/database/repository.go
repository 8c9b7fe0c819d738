package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/roster/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*DepartmentRepo
	*RoleRepo
	*EmployeeRepo

	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, driver Driver) *Repository {
	return &Repository{
		DepartmentRepo: &DepartmentRepo{db: db, driver: driver},
		RoleRepo:       &RoleRepo{db: db, driver: driver},
		EmployeeRepo:   &EmployeeRepo{db: db, driver: driver},
		db:             db,
	}
}

// Close releases the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Wrapper methods for DepartmentRepo
func (r *Repository) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	return r.DepartmentRepo.Create(ctx, name)
}

func (r *Repository) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return r.DepartmentRepo.GetAll(ctx)
}

// Wrapper methods for RoleRepo
func (r *Repository) CreateRole(ctx context.Context, title string, salary float64, departmentID int) (*models.Role, error) {
	return r.RoleRepo.Create(ctx, title, salary, departmentID)
}

func (r *Repository) GetAllRoles(ctx context.Context) ([]*models.Role, error) {
	return r.RoleRepo.GetAll(ctx)
}

func (r *Repository) GetRoleViews(ctx context.Context) ([]*models.RoleView, error) {
	return r.RoleRepo.GetViews(ctx)
}

// Wrapper methods for EmployeeRepo
func (r *Repository) CreateEmployee(ctx context.Context, firstName, lastName string, roleID int, managerID *int) (*models.Employee, error) {
	return r.EmployeeRepo.Create(ctx, firstName, lastName, roleID, managerID)
}

func (r *Repository) GetAllEmployees(ctx context.Context) ([]*models.Employee, error) {
	return r.EmployeeRepo.GetAll(ctx)
}

func (r *Repository) GetEmployeeByID(ctx context.Context, id int) (*models.Employee, error) {
	return r.EmployeeRepo.GetByID(ctx, id)
}

func (r *Repository) GetEmployeeViews(ctx context.Context) ([]*models.EmployeeView, error) {
	return r.EmployeeRepo.GetViews(ctx)
}

func (r *Repository) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int) error {
	return r.EmployeeRepo.UpdateRole(ctx, employeeID, roleID)
}
