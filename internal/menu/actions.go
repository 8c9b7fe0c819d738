package menu

import (
	"fmt"

	"github.com/thenoetrevino/roster/internal/choices"
)

// Action is one entry of the main menu
type Action int

const (
	ActionViewDepartments Action = iota + 1
	ActionViewRoles
	ActionViewEmployees
	ActionAddDepartment
	ActionAddRole
	ActionAddEmployee
	ActionUpdateEmployeeRole
	ActionExit
)

// Actions lists the menu entries in display order
var Actions = []Action{
	ActionViewDepartments,
	ActionViewRoles,
	ActionViewEmployees,
	ActionAddDepartment,
	ActionAddRole,
	ActionAddEmployee,
	ActionUpdateEmployeeRole,
	ActionExit,
}

var actionLabels = map[Action]string{
	ActionViewDepartments:    "View all departments",
	ActionViewRoles:          "View all roles",
	ActionViewEmployees:      "View all employees",
	ActionAddDepartment:      "Add a department",
	ActionAddRole:            "Add a role",
	ActionAddEmployee:        "Add an employee",
	ActionUpdateEmployeeRole: "Update an employee role",
	ActionExit:               "Exit",
}

// String returns the menu label
func (a Action) String() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// menuChoices builds the select options for the main menu
func menuChoices() []choices.Choice {
	list := make([]choices.Choice, 0, len(Actions))
	for _, a := range Actions {
		list = append(list, choices.Of(a.String(), int(a)))
	}
	return list
}
