package database

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPostgresRepo connects to ROSTER_TEST_POSTGRES_DSN and starts from empty
// tables. The database behind the DSN is wiped, so point it at a scratch database.
func setupPostgresRepo(t *testing.T) *Repository {
	t.Helper()

	dsn := os.Getenv("ROSTER_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ROSTER_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	raw, err := sql.Open(DriverPostgres.sqlName(), dsn)
	require.NoError(t, err)
	_, err = raw.ExecContext(ctx, `DROP TABLE IF EXISTS employee, role, department`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	db, err := InitDB(ctx, DriverPostgres, dsn)
	require.NoError(t, err)

	repo := NewRepository(db, DriverPostgres)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestPostgresRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := setupPostgresRepo(t)

	d, err := repo.CreateDepartment(ctx, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, 1, d.ID)

	engineer, err := repo.CreateRole(ctx, "Engineer", 80000, d.ID)
	require.NoError(t, err)
	lead, err := repo.CreateRole(ctx, "Lead Engineer", 120000.5, d.ID)
	require.NoError(t, err)

	grace, err := repo.CreateEmployee(ctx, "Grace", "Hopper", lead.ID, nil)
	require.NoError(t, err)
	ada, err := repo.CreateEmployee(ctx, "Ada", "Lovelace", engineer.ID, &grace.ID)
	require.NoError(t, err)

	roles, err := repo.GetRoleViews(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "Engineering", roles[0].Department)
	assert.Equal(t, 120000.5, roles[1].Salary)

	views, err := repo.GetEmployeeViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Nil(t, views[0].Manager)
	require.NotNil(t, views[1].Manager)
	assert.Equal(t, "Grace Hopper", *views[1].Manager)

	require.NoError(t, repo.UpdateEmployeeRole(ctx, ada.ID, lead.ID))
	got, err := repo.GetEmployeeByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, lead.ID, got.RoleID)
	require.NotNil(t, got.ManagerID)
	assert.Equal(t, grace.ID, *got.ManagerID)

	_, err = repo.GetEmployeeByID(ctx, 999)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.ErrorIs(t, repo.UpdateEmployeeRole(ctx, 999, lead.ID), ErrEmployeeNotFound)
}

func TestPostgresLongNames(t *testing.T) {
	ctx := context.Background()
	repo := setupPostgresRepo(t)
	long := strings.Repeat("Research and Development ", 3)

	d, err := repo.CreateDepartment(ctx, long)
	require.NoError(t, err)
	_, err = repo.CreateRole(ctx, long, 1, d.ID)
	require.NoError(t, err)
}
