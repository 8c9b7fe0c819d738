package models

// Role represents a job title with a salary, belonging to one department
type Role struct {
	ID           int
	Title        string
	Salary       float64
	DepartmentID int
}

// RoleView is a role joined with the name of its department
type RoleView struct {
	ID         int
	Title      string
	Department string
	Salary     float64
}
