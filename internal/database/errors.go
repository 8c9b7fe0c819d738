package database

import "errors"

var (
	// ErrUnknownDriver indicates a driver name other than sqlite or postgres
	ErrUnknownDriver = errors.New("unknown database driver")

	// ErrEmployeeNotFound indicates no employee row matched the given id
	ErrEmployeeNotFound = errors.New("employee not found")
)
