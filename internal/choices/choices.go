// Package choices turns store rows into labeled option lists for select prompts
// and supplies the validators used by text prompts.
package choices

import (
	"github.com/thenoetrevino/roster/internal/models"
)

// NoneLabel is the label of the synthetic "no manager" option
const NoneLabel = "None"

// Choice is a single selectable option. A nil Value means "none".
type Choice struct {
	Label string
	Value *int
}

// Of builds a choice carrying id
func Of(label string, id int) Choice {
	return Choice{Label: label, Value: &id}
}

// None builds the synthetic option carrying no value
func None() Choice {
	return Choice{Label: NoneLabel}
}

// IsNone reports whether the choice carries no value
func (c Choice) IsNone() bool {
	return c.Value == nil
}

// ID returns the carried id, or 0 for the none option
func (c Choice) ID() int {
	if c.Value == nil {
		return 0
	}
	return *c.Value
}

// Departments labels each department by name
func Departments(departments []*models.Department) []Choice {
	out := make([]Choice, 0, len(departments))
	for _, d := range departments {
		out = append(out, Of(d.Name, d.ID))
	}
	return out
}

// Roles labels each role by title
func Roles(roles []*models.Role) []Choice {
	out := make([]Choice, 0, len(roles))
	for _, r := range roles {
		out = append(out, Of(r.Title, r.ID))
	}
	return out
}

// Employees labels each employee by full name
func Employees(employees []*models.Employee) []Choice {
	out := make([]Choice, 0, len(employees))
	for _, e := range employees {
		out = append(out, Of(e.FullName(), e.ID))
	}
	return out
}

// Managers is Employees followed by the None option, always last
func Managers(employees []*models.Employee) []Choice {
	return append(Employees(employees), None())
}

// Require returns an *EmptyListError wrapping ErrNoChoices when list is empty
func Require(list []Choice, what string) error {
	if len(list) == 0 {
		return &EmptyListError{What: what}
	}
	return nil
}
