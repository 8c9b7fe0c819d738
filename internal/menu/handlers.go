package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/roster/internal/choices"
	"github.com/thenoetrevino/roster/internal/prompt"
)

func (m *Menu) viewDepartments(ctx context.Context) error {
	departments, err := m.store.GetAllDepartments(ctx)
	if err != nil {
		return fmt.Errorf("viewing departments: %w", err)
	}
	return m.out.Departments(departments)
}

func (m *Menu) viewRoles(ctx context.Context) error {
	roles, err := m.store.GetRoleViews(ctx)
	if err != nil {
		return fmt.Errorf("viewing roles: %w", err)
	}
	return m.out.Roles(roles)
}

func (m *Menu) viewEmployees(ctx context.Context) error {
	employees, err := m.store.GetEmployeeViews(ctx)
	if err != nil {
		return fmt.Errorf("viewing employees: %w", err)
	}
	return m.out.Employees(employees)
}

func (m *Menu) addDepartment(ctx context.Context) error {
	answers, err := m.prompter.Ask(ctx,
		prompt.Input("name", "Enter the name of the department:", choices.ValidateName))
	if err != nil {
		return err
	}

	name := strings.TrimSpace(answers.String("name"))
	department, err := m.store.CreateDepartment(ctx, name)
	if err != nil {
		return fmt.Errorf("adding department: %w", err)
	}

	slog.Info("department added", "id", department.ID, "name", department.Name)
	return m.out.Success("Department %s added! (id %d)", department.Name, department.ID)
}

func (m *Menu) addRole(ctx context.Context) error {
	departments, err := m.store.GetAllDepartments(ctx)
	if err != nil {
		return fmt.Errorf("loading departments: %w", err)
	}
	departmentChoices := choices.Departments(departments)
	if err := choices.Require(departmentChoices, "departments"); err != nil {
		return m.missing(err, "Add a department first.")
	}

	answers, err := m.prompter.Ask(ctx,
		prompt.Input("title", "Enter the title of the role:", choices.ValidateName),
		prompt.Input("salary", "Enter the salary for the role:", choices.ValidateSalary),
		prompt.Select("department", "Select the department for the role:", departmentChoices),
	)
	if err != nil {
		return err
	}

	salary, err := choices.ParseSalary(answers.String("salary"))
	if err != nil {
		return fmt.Errorf("adding role: %w", err)
	}

	title := strings.TrimSpace(answers.String("title"))
	role, err := m.store.CreateRole(ctx, title, salary, answers.Choice("department").ID())
	if err != nil {
		return fmt.Errorf("adding role: %w", err)
	}

	slog.Info("role added", "id", role.ID, "title", role.Title, "department_id", role.DepartmentID)
	return m.out.Success("Role %s added! (id %d)", role.Title, role.ID)
}

func (m *Menu) addEmployee(ctx context.Context) error {
	roles, err := m.store.GetAllRoles(ctx)
	if err != nil {
		return fmt.Errorf("loading roles: %w", err)
	}
	roleChoices := choices.Roles(roles)
	if err := choices.Require(roleChoices, "roles"); err != nil {
		return m.missing(err, "Add a role first.")
	}

	employees, err := m.store.GetAllEmployees(ctx)
	if err != nil {
		return fmt.Errorf("loading employees: %w", err)
	}

	answers, err := m.prompter.Ask(ctx,
		prompt.Input("first_name", "Enter the employee's first name:", choices.ValidateName),
		prompt.Input("last_name", "Enter the employee's last name:", choices.ValidateName),
		prompt.Select("role", "Select the employee's role:", roleChoices),
		prompt.Select("manager", "Select the employee's manager:", choices.Managers(employees)),
	)
	if err != nil {
		return err
	}

	managerID, managerName, err := m.resolveManager(ctx, answers.Choice("manager"))
	if err != nil {
		return err
	}

	employee, err := m.store.CreateEmployee(ctx,
		strings.TrimSpace(answers.String("first_name")),
		strings.TrimSpace(answers.String("last_name")),
		answers.Choice("role").ID(),
		managerID,
	)
	if err != nil {
		return fmt.Errorf("adding employee: %w", err)
	}

	slog.Info("employee added", "id", employee.ID, "role_id", employee.RoleID, "manager", managerName)
	return m.out.Success("Employee %s added! (id %d)", employee.FullName(), employee.ID)
}

func (m *Menu) updateEmployeeRole(ctx context.Context) error {
	employees, err := m.store.GetAllEmployees(ctx)
	if err != nil {
		return fmt.Errorf("loading employees: %w", err)
	}
	employeeChoices := choices.Employees(employees)
	if err := choices.Require(employeeChoices, "employees"); err != nil {
		return m.missing(err, "Add an employee first.")
	}

	roles, err := m.store.GetAllRoles(ctx)
	if err != nil {
		return fmt.Errorf("loading roles: %w", err)
	}
	roleChoices := choices.Roles(roles)
	if err := choices.Require(roleChoices, "roles"); err != nil {
		return m.missing(err, "Add a role first.")
	}

	answers, err := m.prompter.Ask(ctx,
		prompt.Select("employee", "Select the employee to update:", employeeChoices),
		prompt.Select("role", "Select the new role for the employee:", roleChoices),
	)
	if err != nil {
		return err
	}

	employee := answers.Choice("employee")
	role := answers.Choice("role")
	if err := m.store.UpdateEmployeeRole(ctx, employee.ID(), role.ID()); err != nil {
		return fmt.Errorf("updating employee role: %w", err)
	}

	slog.Info("employee role updated", "employee_id", employee.ID(), "role_id", role.ID())
	return m.out.Success("Employee role updated! %s is now %s", employee.Label, role.Label)
}

// resolveManager looks the selected manager up by id so the reference names an
// existing employee at insert time. None yields a nil id.
func (m *Menu) resolveManager(ctx context.Context, manager choices.Choice) (*int, string, error) {
	if manager.IsNone() {
		return nil, manager.Label, nil
	}

	boss, err := m.store.GetEmployeeByID(ctx, manager.ID())
	if err != nil {
		return nil, "", fmt.Errorf("resolving manager %s: %w", manager.Label, err)
	}
	return &boss.ID, boss.FullName(), nil
}

// missing reports an empty choice list and returns to the menu
func (m *Menu) missing(err error, hint string) error {
	if !errors.Is(err, choices.ErrNoChoices) {
		return err
	}
	slog.Info("action skipped", "reason", err)
	return m.out.Notice("%s. %s", capitalize(err.Error()), hint)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
