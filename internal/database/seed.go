package database

import (
	"context"
	"fmt"
	"log/slog"
)

type seedRole struct {
	title      string
	salary     float64
	department string
}

type seedEmployee struct {
	first, last string
	role        string
	manager     string // full name of an earlier entry, empty for none
}

var (
	seedDepartments = []string{"Engineering", "Finance", "Legal", "Sales"}

	seedRoles = []seedRole{
		{"Lead Engineer", 150000, "Engineering"},
		{"Software Engineer", 120000, "Engineering"},
		{"Account Manager", 160000, "Finance"},
		{"Accountant", 125000, "Finance"},
		{"Legal Team Lead", 250000, "Legal"},
		{"Lawyer", 190000, "Legal"},
		{"Sales Lead", 100000, "Sales"},
		{"Salesperson", 80000, "Sales"},
	}

	seedEmployees = []seedEmployee{
		{"Ashley", "Rodriguez", "Lead Engineer", ""},
		{"Kevin", "Tupik", "Software Engineer", "Ashley Rodriguez"},
		{"Kunal", "Singh", "Account Manager", ""},
		{"Malia", "Brown", "Accountant", "Kunal Singh"},
		{"Sarah", "Lourd", "Legal Team Lead", ""},
		{"Tom", "Allen", "Lawyer", "Sarah Lourd"},
		{"John", "Doe", "Sales Lead", ""},
		{"Mike", "Chan", "Salesperson", "John Doe"},
	}
)

// Seed inserts a small sample organization when the store has no departments.
// Returns false without writing anything if data already exists.
func Seed(ctx context.Context, store DataStore) (bool, error) {
	existing, err := store.GetAllDepartments(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	departmentIDs := make(map[string]int, len(seedDepartments))
	for _, name := range seedDepartments {
		d, err := store.CreateDepartment(ctx, name)
		if err != nil {
			return false, fmt.Errorf("seeding department %s: %w", name, err)
		}
		departmentIDs[name] = d.ID
	}

	roleIDs := make(map[string]int, len(seedRoles))
	for _, sr := range seedRoles {
		role, err := store.CreateRole(ctx, sr.title, sr.salary, departmentIDs[sr.department])
		if err != nil {
			return false, fmt.Errorf("seeding role %s: %w", sr.title, err)
		}
		roleIDs[sr.title] = role.ID
	}

	employeeIDs := make(map[string]int, len(seedEmployees))
	for _, se := range seedEmployees {
		var managerID *int
		if se.manager != "" {
			id := employeeIDs[se.manager]
			managerID = &id
		}
		e, err := store.CreateEmployee(ctx, se.first, se.last, roleIDs[se.role], managerID)
		if err != nil {
			return false, fmt.Errorf("seeding employee %s %s: %w", se.first, se.last, err)
		}
		employeeIDs[e.FullName()] = e.ID
	}

	slog.Info("seeded sample organization",
		"departments", len(seedDepartments),
		"roles", len(seedRoles),
		"employees", len(seedEmployees))
	return true, nil
}
