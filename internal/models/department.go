package models

// Department represents an organizational unit grouping roles
type Department struct {
	ID   int
	Name string
}
