package models

import "testing"

func TestEmployeeFullName(t *testing.T) {
	e := &Employee{FirstName: "Ada", LastName: "Lovelace"}

	if got := e.FullName(); got != "Ada Lovelace" {
		t.Errorf("FullName() = %q, want %q", got, "Ada Lovelace")
	}
}
