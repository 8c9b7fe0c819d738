package database

import (
	"errors"
	"testing"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name   string
		driver Driver
		query  string
		want   string
	}{
		{"sqlite untouched", DriverSQLite, "UPDATE employee SET role_id = ? WHERE id = ?", "UPDATE employee SET role_id = ? WHERE id = ?"},
		{"postgres numbered", DriverPostgres, "UPDATE employee SET role_id = ? WHERE id = ?", "UPDATE employee SET role_id = $1 WHERE id = $2"},
		{"postgres no params", DriverPostgres, "SELECT id FROM department", "SELECT id FROM department"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.driver.rebind(tt.query); got != tt.want {
				t.Errorf("rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDriverValidate(t *testing.T) {
	if err := DriverSQLite.Validate(); err != nil {
		t.Errorf("sqlite should be valid: %v", err)
	}
	if err := DriverPostgres.Validate(); err != nil {
		t.Errorf("postgres should be valid: %v", err)
	}
	if err := Driver("mysql").Validate(); !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("mysql should be rejected with ErrUnknownDriver, got %v", err)
	}
}

func TestSQLName(t *testing.T) {
	if DriverPostgres.sqlName() != "pgx" {
		t.Errorf("postgres should use the pgx driver")
	}
	if DriverSQLite.sqlName() != "sqlite" {
		t.Errorf("sqlite should use the sqlite driver")
	}
}
