package choices

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/models"
)

func TestDepartments(t *testing.T) {
	got := Departments([]*models.Department{
		{ID: 1, Name: "Engineering"},
		{ID: 4, Name: "Sales"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Engineering", got[0].Label)
	assert.Equal(t, 1, got[0].ID())
	assert.Equal(t, "Sales", got[1].Label)
	assert.Equal(t, 4, got[1].ID())
}

func TestRoles(t *testing.T) {
	got := Roles([]*models.Role{{ID: 2, Title: "Lead Engineer", Salary: 1, DepartmentID: 1}})

	require.Len(t, got, 1)
	assert.Equal(t, "Lead Engineer", got[0].Label)
	assert.Equal(t, 2, got[0].ID())
}

func TestManagersAppendsNoneLast(t *testing.T) {
	employees := []*models.Employee{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		{ID: 2, FirstName: "Grace", LastName: "Hopper"},
	}

	got := Managers(employees)

	require.Len(t, got, 3)
	assert.Equal(t, "Ada Lovelace", got[0].Label)
	assert.Equal(t, 1, got[0].ID())
	assert.Equal(t, "Grace Hopper", got[1].Label)
	assert.False(t, got[1].IsNone())

	last := got[len(got)-1]
	assert.Equal(t, NoneLabel, last.Label)
	assert.True(t, last.IsNone())
	assert.Nil(t, last.Value)
}

func TestManagersWithNoEmployees(t *testing.T) {
	got := Managers(nil)

	require.Len(t, got, 1)
	assert.True(t, got[0].IsNone())
}

func TestEmployeesHasNoNone(t *testing.T) {
	got := Employees([]*models.Employee{{ID: 3, FirstName: "Ada", LastName: "Lovelace"}})

	require.Len(t, got, 1)
	assert.False(t, got[0].IsNone())
}

func TestOfCopiesID(t *testing.T) {
	id := 5
	c := Of("x", id)
	id = 6

	assert.Equal(t, 5, c.ID())
}

func TestRequire(t *testing.T) {
	assert.NoError(t, Require([]Choice{Of("a", 1)}, "departments"))

	err := Require(nil, "departments")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoChoices))
	assert.Equal(t, "no departments available", err.Error())
}
