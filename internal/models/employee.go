package models

// Employee represents a person holding one role
// ManagerID is nil when the employee reports to no one
type Employee struct {
	ID        int
	FirstName string
	LastName  string
	RoleID    int
	ManagerID *int
}

// FullName returns "first last"
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeView is an employee joined with its role, department and manager
type EmployeeView struct {
	ID         int
	FirstName  string
	LastName   string
	Title      string
	Department string
	Salary     float64
	Manager    *string // manager full name, nil when there is none
}
