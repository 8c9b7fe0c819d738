package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDepartment(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	d, err := repo.CreateDepartment(ctx, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, 1, d.ID)

	departments, err := repo.GetAllDepartments(ctx)
	require.NoError(t, err)

	matches := 0
	for _, got := range departments {
		if got.Name == "Engineering" {
			matches++
			assert.Equal(t, d.ID, got.ID)
		}
	}
	assert.Equal(t, 1, matches, "expected exactly one Engineering row")
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	_, err := repo.CreateDepartment(ctx, "Sales")
	require.NoError(t, err)

	_, err = repo.CreateDepartment(ctx, "Sales")
	assert.Error(t, err, "department names are unique")
}

func TestGetAllDepartmentsEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	departments, err := repo.GetAllDepartments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, departments)
}

func TestCreateRole(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	d, err := repo.CreateDepartment(ctx, "Engineering")
	require.NoError(t, err)

	t.Run("role keeps department reference", func(t *testing.T) {
		role, err := repo.CreateRole(ctx, "Engineer", 80000, d.ID)
		require.NoError(t, err)

		roles, err := repo.GetAllRoles(ctx)
		require.NoError(t, err)
		require.Len(t, roles, 1)
		assert.Equal(t, role.ID, roles[0].ID)
		assert.Equal(t, d.ID, roles[0].DepartmentID)
		assert.InDelta(t, 80000.0, roles[0].Salary, 0.001)
	})

	t.Run("view shows department name", func(t *testing.T) {
		views, err := repo.GetRoleViews(ctx)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Engineer", views[0].Title)
		assert.Equal(t, "Engineering", views[0].Department)
	})

	t.Run("fractional salary", func(t *testing.T) {
		role, err := repo.CreateRole(ctx, "Intern", 50000.50, d.ID)
		require.NoError(t, err)

		roles, err := repo.GetAllRoles(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 50000.50, roles[len(roles)-1].Salary, 0.001)
		assert.Equal(t, role.ID, roles[len(roles)-1].ID)
	})

	t.Run("unknown department is rejected", func(t *testing.T) {
		_, err := repo.CreateRole(ctx, "Ghost", 1, 999)
		assert.Error(t, err)
	})

	t.Run("negative salary is rejected", func(t *testing.T) {
		_, err := repo.CreateRole(ctx, "Debt", -1, d.ID)
		assert.Error(t, err)
	})
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	d, err := repo.CreateDepartment(ctx, "Engineering")
	require.NoError(t, err)
	role, err := repo.CreateRole(ctx, "Engineer", 80000, d.ID)
	require.NoError(t, err)

	ada, err := repo.CreateEmployee(ctx, "Ada", "Lovelace", role.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, ada.ManagerID)

	charles, err := repo.CreateEmployee(ctx, "Charles", "Babbage", role.ID, &ada.ID)
	require.NoError(t, err)

	t.Run("null manager persists", func(t *testing.T) {
		got, err := repo.GetEmployeeByID(ctx, ada.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ManagerID)
	})

	t.Run("manager reference persists", func(t *testing.T) {
		got, err := repo.GetEmployeeByID(ctx, charles.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ManagerID)
		assert.Equal(t, ada.ID, *got.ManagerID)
	})

	t.Run("views join role, department and manager", func(t *testing.T) {
		views, err := repo.GetEmployeeViews(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, "Engineer", views[0].Title)
		assert.Equal(t, "Engineering", views[0].Department)
		assert.InDelta(t, 80000.0, views[0].Salary, 0.001)
		assert.Nil(t, views[0].Manager)

		require.NotNil(t, views[1].Manager)
		assert.Equal(t, "Ada Lovelace", *views[1].Manager)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := repo.CreateEmployee(ctx, "No", "Role", 999, nil)
		assert.Error(t, err)
	})

	t.Run("unknown manager is rejected", func(t *testing.T) {
		missing := 999
		_, err := repo.CreateEmployee(ctx, "No", "Boss", role.ID, &missing)
		assert.Error(t, err)
	})
}

func TestUpdateEmployeeRole(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	d, err := repo.CreateDepartment(ctx, "Engineering")
	require.NoError(t, err)
	engineer, err := repo.CreateRole(ctx, "Engineer", 80000, d.ID)
	require.NoError(t, err)
	lead, err := repo.CreateRole(ctx, "Lead Engineer", 120000, d.ID)
	require.NoError(t, err)

	boss, err := repo.CreateEmployee(ctx, "Grace", "Hopper", lead.ID, nil)
	require.NoError(t, err)
	ada, err := repo.CreateEmployee(ctx, "Ada", "Lovelace", engineer.ID, &boss.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateEmployeeRole(ctx, ada.ID, lead.ID))

	got, err := repo.GetEmployeeByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, lead.ID, got.RoleID)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	require.NotNil(t, got.ManagerID)
	assert.Equal(t, boss.ID, *got.ManagerID)

	other, err := repo.GetEmployeeByID(ctx, boss.ID)
	require.NoError(t, err)
	assert.Equal(t, lead.ID, other.RoleID)
	assert.Nil(t, other.ManagerID)
}

func TestUpdateEmployeeRoleNotFound(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	d, err := repo.CreateDepartment(ctx, "Engineering")
	require.NoError(t, err)
	role, err := repo.CreateRole(ctx, "Engineer", 80000, d.ID)
	require.NoError(t, err)

	err = repo.UpdateEmployeeRole(ctx, 42, role.ID)
	assert.True(t, errors.Is(err, ErrEmployeeNotFound))
}

func TestGetEmployeeByIDNotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetEmployeeByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	seeded, err := Seed(ctx, repo)
	require.NoError(t, err)
	assert.True(t, seeded)

	views, err := repo.GetEmployeeViews(ctx)
	require.NoError(t, err)
	assert.Len(t, views, len(seedEmployees))

	seeded, err = Seed(ctx, repo)
	require.NoError(t, err)
	assert.False(t, seeded, "second seed must be a no-op")

	departments, err := repo.GetAllDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, departments, len(seedDepartments))
}
